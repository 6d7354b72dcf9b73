package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("email wajib diisi")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("format email tidak valid")
	}
	return nil
}

// ValidatePhone accepts digits with the usual separators, e.g. "+62 812-3456".
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(strings.TrimSpace(phone)) {
		return errors.New("format nomor telepon tidak valid")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password minimal 6 karakter")
	}
	if len(password) > 100 {
		return errors.New("password terlalu panjang")
	}
	return nil
}
