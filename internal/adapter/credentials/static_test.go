package credentials

import (
	"context"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticChecker(t *testing.T) {
	chk, err := NewStaticCheckerFromPassword("test@example.com", "password123")
	require.NoError(t, err)

	tests := []struct {
		name  string
		creds domain.Credentials
		want  bool
	}{
		{"Match", domain.Credentials{Email: "test@example.com", Password: "password123"}, true},
		{"WrongPassword", domain.Credentials{Email: "test@example.com", Password: "password1234"}, false},
		{"WrongEmail", domain.Credentials{Email: "Test@example.com", Password: "password123"}, false},
		{"BothWrong", domain.Credentials{Email: "a@b.c", Password: "x"}, false},
		{"Empty", domain.Credentials{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := chk.CheckCredentials(context.Background(), tt.creds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := chk.CheckCredentials(ctx, domain.Credentials{
			Email: "test@example.com", Password: "password123",
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewStaticChecker(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	chk, err := NewStaticChecker("admin@example.com", hash)
	require.NoError(t, err)
	ok, err := chk.CheckCredentials(context.Background(), domain.Credentials{
		Email: "admin@example.com", Password: "s3cret",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = NewStaticChecker("admin@example.com", []byte("plain"))
	assert.Error(t, err)

	_, err = NewStaticChecker("", hash)
	assert.Error(t, err)

	_, err = NewStaticCheckerFromPassword("admin@example.com", "")
	assert.Error(t, err)
}
