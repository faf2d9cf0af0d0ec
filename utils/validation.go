package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	urlRegex   = regexp.MustCompile(`^https?://[^\s]+$`)
)

// ValidateEmail checks if the email is a well-formed address
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidateSlug checks if a blog slug is URL safe
func ValidateSlug(slug string) (bool, string) {
	if slug == "" {
		return false, "Slug is required"
	}
	if !slugRegex.MatchString(slug) {
		return false, "Slug may only contain lowercase letters, numbers and hyphens"
	}
	return true, ""
}

// ValidateURL checks if a string is an absolute http(s) URL
func ValidateURL(raw string) (bool, string) {
	if raw == "" {
		return false, "URL is required"
	}
	if !urlRegex.MatchString(raw) {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}
