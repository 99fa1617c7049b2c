package validation

import (
	"fmt"
	"regexp"
)

var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)

// ValidateUsername проверяет допустимость имени пользователя
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if !usernameRegexp.MatchString(username) {
		return fmt.Errorf("username must be 3-64 characters of letters, digits, '_', '.' or '-'")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к master password
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
