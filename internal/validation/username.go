// Package validation holds input validation rules shared between services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,30}$`)

// Usernames appear as path segments under /api/profiles/, so names that
// collide with API surface or common admin paths are rejected at signup.
var reservedUsernames = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"auth":     {},
	"cache":    {},
	"chat":     {},
	"follow":   {},
	"groups":   {},
	"health":   {},
	"login":    {},
	"me":       {},
	"metrics":  {},
	"posts":    {},
	"profiles": {},
	"signup":   {},
	"users":    {},
	"ws":       {},
}

// ValidateUsername validates username format and reserved names.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 1-30 characters and contain only letters, numbers, dots, hyphens, and underscores")
	}

	if strings.HasPrefix(username, ".") || strings.HasPrefix(username, "-") ||
		strings.HasSuffix(username, ".") || strings.HasSuffix(username, "-") {
		return fmt.Errorf("username cannot start or end with a dot or hyphen")
	}

	if _, exists := reservedUsernames[strings.ToLower(username)]; exists {
		return fmt.Errorf("username is reserved")
	}

	return nil
}
