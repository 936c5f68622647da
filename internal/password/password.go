package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmptyPassword     = errors.New("password must not be empty")
	ErrPasswordTooLong   = errors.New("password exceeds maximum length")
	ErrGeneratedTooShort = errors.New("generated password length must be at least 12")
)

const (
	minLength = 8
	maxLength = 255

	// bcrypt silently truncates beyond 72 bytes, so hashing longer input is
	// rejected instead of weakening the credential.
	bcryptMaxBytes = 72
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?"
)

// commonPasswords are matched case-insensitively by the strength score.
var commonPasswords = []string{
	"password", "password1", "12345678", "123456789", "qwerty123",
	"iloveyou", "admin123", "letmein", "welcome1", "football",
	"superman", "dragon123", "cancha123",
}

// StrengthError reports which strength requirements a password failed.
type StrengthError struct {
	Problems []string
}

func (e *StrengthError) Error() string {
	return "password does not meet requirements: " + strings.Join(e.Problems, "; ")
}

// Hash hashes a plaintext password with bcrypt. Empty or overlong input is
// rejected before hashing.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if len(plain) > bcryptMaxBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt hash. It never
// returns an error: empty input, empty hash, or a malformed hash all verify
// as false.
func Verify(plain, hash string) bool {
	if plain == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidateStrength checks the minimum password policy and returns a
// *StrengthError naming every unmet requirement.
func ValidateStrength(plain string) error {
	var problems []string

	if len(plain) < minLength {
		problems = append(problems, fmt.Sprintf("must be at least %d characters", minLength))
	}
	if len(plain) > maxLength {
		problems = append(problems, fmt.Sprintf("must be at most %d characters", maxLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		problems = append(problems, "must contain an uppercase letter")
	}
	if !hasLower {
		problems = append(problems, "must contain a lowercase letter")
	}
	if !hasDigit {
		problems = append(problems, "must contain a digit")
	}

	if len(problems) > 0 {
		return &StrengthError{Problems: problems}
	}
	return nil
}

// GenerateSecure returns a random password of exactly length characters with
// at least one character from each of the lowercase, uppercase, digit and
// symbol classes. Lengths below 12 are rejected.
func GenerateSecure(length int) (string, error) {
	if length < 12 {
		return "", ErrGeneratedTooShort
	}

	classes := []string{lowerChars, upperChars, digitChars, symbolChars}
	all := strings.Join(classes, "")

	chars := make([]byte, 0, length)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates so the guaranteed class characters do not sit at fixed
	// positions.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

// Strength scores a password 0..4. Common passwords score 0 regardless of
// composition.
func Strength(plain string) int {
	lowered := strings.ToLower(plain)
	for _, common := range commonPasswords {
		if lowered == common {
			return 0
		}
	}

	score := 0
	if len(plain) >= minLength {
		score++
	}
	if len(plain) >= 12 {
		score++
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if hasUpper && hasLower && hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}

	if score > 4 {
		score = 4
	}
	return score
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}
