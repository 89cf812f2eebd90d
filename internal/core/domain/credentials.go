package domain

import (
	"errors"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Invalid email format"
	MsgPasswordRequired   = "Password is required"
	MsgInvalidCredentials = "Invalid email or password."
	MsgLoginUnavailable   = "An error occurred. Please try again."
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Credentials struct {
	Email    string
	Password string
}

// ValidationErrors maps a form field to the message shown under it.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
		b.WriteString(";")
	}
	return b.String()
}

// A FieldRule returns an empty string when v is acceptable and the
// message to show otherwise.
type FieldRule func(v string) string

func Required(msg string) FieldRule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// NonEmpty rejects only the empty string. Whitespace counts as a value.
func NonEmpty(msg string) FieldRule {
	return func(v string) string {
		if v == "" {
			return msg
		}
		return ""
	}
}

func EmailFormat(msg string) FieldRule {
	return func(v string) string {
		if !IsEmail(v) {
			return msg
		}
		return ""
	}
}

// IsEmail reports whether v is a bare ASCII address such as
// "user@host.tld". Display names and angle brackets are rejected.
func IsEmail(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] >= utf8.RuneSelf {
			return false
		}
	}
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return false
	}
	if addr.Address != v || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(v, '@')
	return at > 0 && at < len(v)-1
}

// firstFailure applies rules in order and stops at the first message.
func firstFailure(v string, rules ...FieldRule) string {
	for _, rule := range rules {
		if msg := rule(v); msg != "" {
			return msg
		}
	}
	return ""
}

var (
	emailRules    = []FieldRule{Required(MsgEmailRequired), EmailFormat(MsgEmailInvalid)}
	passwordRules = []FieldRule{NonEmpty(MsgPasswordRequired)}
)

// Validate checks every field of the login form. It returns nil when
// the credentials may be submitted.
func (c Credentials) Validate() error {
	errs := ValidationErrors{}
	if msg := firstFailure(c.Email, emailRules...); msg != "" {
		errs[FieldEmail] = msg
	}
	if msg := firstFailure(c.Password, passwordRules...); msg != "" {
		errs[FieldPassword] = msg
	}
	if len(errs) != 0 {
		return errs
	}
	return nil
}
