package util

import (
	"errors"
	"regexp"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// E.164 with the separators dispatchers commonly type in.
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 .\-()]{6,19}$`)
)

func IsEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}

func IsPhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return errors.New("invalid phone")
	}
	return nil
}
