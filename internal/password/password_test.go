package password

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	plain := "Correct1Horse"

	hash, err := Hash(plain)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, Verify(plain, hash))

	// Any single-character mutation must fail verification.
	mutated := "correct1Horse"
	assert.False(t, Verify(mutated, hash))
}

func TestHash_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "empty", plain: "", wantErr: ErrEmptyPassword},
		{name: "too long for bcrypt", plain: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Hash(tt.plain)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_NeverErrors(t *testing.T) {
	hash, _ := Hash("Valid1Password")

	assert.False(t, Verify("", hash))
	assert.False(t, Verify("Valid1Password", ""))
	assert.False(t, Verify("Valid1Password", "not-a-bcrypt-hash"))
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name        string
		plain       string
		wantProblem string
	}{
		{name: "too short", plain: "Ab1", wantProblem: "at least 8 characters"},
		{name: "too long", plain: "Ab1" + strings.Repeat("x", 260), wantProblem: "at most 255 characters"},
		{name: "missing uppercase", plain: "lowercase1", wantProblem: "uppercase letter"},
		{name: "missing lowercase", plain: "UPPERCASE1", wantProblem: "lowercase letter"},
		{name: "missing digit", plain: "NoDigitsHere", wantProblem: "digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStrength(tt.plain)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantProblem)

			var strengthErr *StrengthError
			assert.ErrorAs(t, err, &strengthErr)
		})
	}

	assert.NoError(t, ValidateStrength("GoodPass1"))
}

func TestGenerateSecure(t *testing.T) {
	for _, length := range []int{12, 16, 32} {
		got, err := GenerateSecure(length)
		assert.NoError(t, err)
		assert.Len(t, got, length)

		var hasUpper, hasLower, hasDigit, hasSymbol bool
		for _, r := range got {
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
		assert.True(t, hasUpper, "length %d: missing uppercase", length)
		assert.True(t, hasLower, "length %d: missing lowercase", length)
		assert.True(t, hasDigit, "length %d: missing digit", length)
		assert.True(t, hasSymbol, "length %d: missing symbol", length)
	}
}

func TestGenerateSecure_TooShort(t *testing.T) {
	_, err := GenerateSecure(11)
	assert.ErrorIs(t, err, ErrGeneratedTooShort)
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		want  int
	}{
		{name: "common password scores zero", plain: "Password", want: 0},
		{name: "common password case-insensitive", plain: "QWERTY123", want: 0},
		{name: "short weak", plain: "abc", want: 0},
		{name: "long mixed with symbol", plain: "Str0ng!Password", want: 4},
		{name: "mixed no symbol", plain: "Abcdefg1", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strength(tt.plain))
		})
	}
}
