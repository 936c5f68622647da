package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := Generate()
		assert.NoError(t, err)
		assert.Len(t, token, RegistrationTokenLength)
		assert.True(t, IsValidFormat(token))
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	assert.NoError(t, err)
	assert.Len(t, token, ShareTokenLength)
	assert.True(t, IsValidShareFormat(token))
}

func TestIsValidFormat(t *testing.T) {
	valid := strings.Repeat("ab12", 16)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "valid", token: valid, want: true},
		{name: "empty", token: "", want: false},
		{name: "too short", token: valid[:63], want: false},
		{name: "too long", token: valid + "a", want: false},
		{name: "uppercase hex rejected", token: strings.ToUpper(valid), want: false},
		{name: "non-hex charset", token: strings.Repeat("zz12", 16), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFormat(tt.token))
		})
	}
}

func TestManagementURL(t *testing.T) {
	token := strings.Repeat("a1", 32)

	assert.Equal(t,
		"https://cancha.example.com/mi-registro/"+token,
		ManagementURL("https://cancha.example.com", token),
	)

	// Trailing slash on the base must not double up.
	assert.Equal(t,
		"https://cancha.example.com/mi-registro/"+token,
		ManagementURL("https://cancha.example.com/", token),
	)
}

func TestShareURL(t *testing.T) {
	assert.Equal(t,
		"https://cancha.example.com/games/abcdef0123456789/register",
		ShareURL("https://cancha.example.com", "abcdef0123456789"),
	)
}
