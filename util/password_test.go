package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"workspace-chat-app/apperror"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "hunter42"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
	req.Len(hash, 97)

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("hunter43", hash)
	req.NoError(err)
	req.False(match)
}

func TestHashUsesFreshSalt(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("same-password")
	req.NoError(err)
	second, err := HashPassword("same-password")
	req.NoError(err)

	req.NotEqual(first, second)
}

func TestCompareRejectsMalformedHash(t *testing.T) {
	valid, err := HashPassword("hunter42")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plain text", "hunter42"},
		{"wrong algorithm", strings.Join([]string{"", "argon2i", parts[2], parts[3], parts[4], parts[5]}, "$")},
		{"wrong version", strings.Join([]string{"", "argon2id", "v=16", parts[3], parts[4], parts[5]}, "$")},
		{"bad params", strings.Join([]string{"", "argon2id", parts[2], "m=x,t=2,p=1", parts[4], parts[5]}, "$")},
		{"zero params", strings.Join([]string{"", "argon2id", parts[2], "m=0,t=2,p=1", parts[4], parts[5]}, "$")},
		{"bad salt", strings.Join([]string{"", "argon2id", parts[2], parts[3], "!!!", parts[5]}, "$")},
		{"empty hash", strings.Join([]string{"", "argon2id", parts[2], parts[3], parts[4], ""}, "$")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			match, err := ComparePassword("hunter42", tt.hash)
			req.False(match)
			req.ErrorIs(err, apperror.ErrMalformedCredential)
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("a-long-benchmark-password-123!")
	}
}
