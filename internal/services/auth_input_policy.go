package services

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeRegistrationInput validates the full registration triple.
// The username keeps its inner spacing; only the edges are trimmed.
func NormalizeRegistrationInput(usernameRaw string, emailRaw string, passwordRaw string) (string, string, string, error) {
	username := strings.TrimSpace(usernameRaw)
	if username == "" {
		return "", "", "", ErrAuthCredentialsInvalid
	}
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return "", "", "", err
	}
	return username, email, password, nil
}
