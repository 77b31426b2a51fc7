package user

import (
	"strings"
	"unicode"
)

const minCredentialLen = 8

// ValidateUsername: at least 8 characters with a letter and a digit.
func ValidateUsername(username string) error {
	if len([]rune(username)) < minCredentialLen {
		return &ValidationError{Field: "username", Reason: "Username must be at least 8 characters long."}
	}
	if !strings.ContainsFunc(username, unicode.IsLetter) {
		return &ValidationError{Field: "username", Reason: "Username must contain at least one letter."}
	}
	if !strings.ContainsFunc(username, isASCIIDigit) {
		return &ValidationError{Field: "username", Reason: "Username must contain at least one number."}
	}
	return nil
}

// ValidatePassword: at least 8 characters with an uppercase letter and a digit.
func ValidatePassword(password string) error {
	if len([]rune(password)) < minCredentialLen {
		return &ValidationError{Field: "password", Reason: "Password must be at least 8 characters long."}
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return &ValidationError{Field: "password", Reason: "Password must contain at least one uppercase letter."}
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		return &ValidationError{Field: "password", Reason: "Password must contain at least one number."}
	}
	return nil
}

// ValidateName rejects blank names and names containing digits.
func ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" || strings.ContainsFunc(value, unicode.IsDigit) {
		return &ValidationError{Field: field, Reason: "Invalid input. Please enter a valid name."}
	}
	return nil
}

func (p RegisterParams) validate() error {
	if err := ValidateUsername(p.Username); err != nil {
		return err
	}
	if err := ValidatePassword(p.Password); err != nil {
		return err
	}
	if err := ValidateName("first_name", p.FirstName); err != nil {
		return err
	}
	return ValidateName("last_name", p.LastName)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
