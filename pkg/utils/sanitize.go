package utils

import "strings"

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
