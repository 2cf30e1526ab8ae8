package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidInput is returned by commands whose input failed validation.
var ErrInvalidInput = errors.New("invalid input")

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	minPasswordLen = 6
	minNameLen     = 2
)

func validateEmail(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case !emailPattern.MatchString(email):
		return "Please enter a valid email"
	}
	return ""
}

func validatePassword(password string) string {
	switch {
	case password == "":
		return "Password is required"
	case len(password) < minPasswordLen:
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	}
	return ""
}

func validateName(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "Name is required"
	case len([]rune(name)) < minNameLen:
		return fmt.Sprintf("Name must be at least %d characters", minNameLen)
	}
	return ""
}

func validateConfirmation(password, confirm string) string {
	switch {
	case confirm == "":
		return "Please confirm your password"
	case confirm != password:
		return "Passwords do not match"
	}
	return ""
}

// collect drops empty messages and turns the rest into ErrInvalidInput.
func collect(messages ...string) ([]string, error) {
	var out []string
	for _, m := range messages {
		if m != "" {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(out, "; "))
}
