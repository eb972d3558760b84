package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// emailRe — базовый формат адреса: local@domain, домен с точкой и TLD из 2+ букв.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validateEmail проверяет формат email и нормализует его (trim + lowercase).
func validateEmail(raw string) (string, error) {
	const op = "service.validate.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if !emailRe.MatchString(email) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю:
// длина >= 8 символов, хотя бы одна буква и хотя бы одна цифра.
// Верхней границы и требований к спецсимволам нет.
func validatePassword(pw string) error {
	const op = "service.validate.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
