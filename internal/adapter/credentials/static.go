package credentials

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var _ port.CredentialChecker = StaticChecker{}

// StaticChecker accepts exactly one email and password pair. It is a
// placeholder until a real identity provider is wired in.
type StaticChecker struct {
	email        string
	passwordHash []byte
}

// NewStaticChecker builds a checker from an email and a bcrypt hash.
func NewStaticChecker(email string, passwordHash []byte) (StaticChecker, error) {
	const op = "credentials.NewStaticChecker"

	if email == "" {
		return StaticChecker{}, fmt.Errorf("%s: empty email", op)
	}
	if _, err := bcrypt.Cost(passwordHash); err != nil {
		return StaticChecker{}, fmt.Errorf("%s: invalid password hash: %w", op, err)
	}
	return StaticChecker{email: email, passwordHash: passwordHash}, nil
}

// NewStaticCheckerFromPassword hashes password before building the checker.
func NewStaticCheckerFromPassword(email, password string) (StaticChecker, error) {
	const op = "credentials.NewStaticCheckerFromPassword"

	if password == "" {
		return StaticChecker{}, fmt.Errorf("%s: empty password", op)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return StaticChecker{}, fmt.Errorf("%s: %w", op, err)
	}
	return NewStaticChecker(email, hash)
}

func (c StaticChecker) CheckCredentials(
	ctx context.Context, creds domain.Credentials,
) (bool, error) {
	const op = "StaticChecker.CheckCredentials"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(c.email)) == 1

	err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(creds.Password))
	switch {
	case err == nil:
		return emailOK, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", op, err)
	}
}
