package tokens

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Token lengths in hex characters. Registration tokens are the sole
// authorization factor for self-service access, so they carry 32 bytes of
// entropy; share tokens are public link identifiers and carry less.
const (
	RegistrationTokenLength = 64
	ShareTokenLength        = 16
)

// Generate returns a new registration token: 64 lowercase hex characters from
// a CSPRNG. Collisions are treated as negligible; the unique constraint on the
// storage column is the backstop.
func Generate() (string, error) {
	return randomHex(RegistrationTokenLength)
}

// GenerateShareToken returns a new public share token for a game.
func GenerateShareToken() (string, error) {
	return randomHex(ShareTokenLength)
}

// IsValidFormat checks the exact length and hex charset of a registration
// token. It is called before any storage lookup so malformed input is
// rejected without touching the database.
func IsValidFormat(token string) bool {
	return isHex(token, RegistrationTokenLength)
}

// IsValidShareFormat checks the exact length and hex charset of a share token.
func IsValidShareFormat(token string) bool {
	return isHex(token, ShareTokenLength)
}

// ManagementURL builds the self-service management URL for a registration
// token. Pure construction, no side effects.
func ManagementURL(baseURL, token string) string {
	return fmt.Sprintf("%s/mi-registro/%s", strings.TrimRight(baseURL, "/"), token)
}

// ShareURL builds the public registration URL for a game share token.
func ShareURL(baseURL, shareToken string) string {
	return fmt.Sprintf("%s/games/%s/register", strings.TrimRight(baseURL, "/"), shareToken)
}

func randomHex(length int) (string, error) {
	buf := make([]byte, length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func isHex(token string, length int) bool {
	if len(token) != length {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
