package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// shortCodeRegex validates short code format: the generator's alphabet
	// (alphanumeric, hyphens, underscores)
	shortCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// allowedSchemes lists permitted URL schemes
	allowedSchemes = map[string]bool{
		"http":  true,
		"https": true,
		"ftp":   true,
	}
)

// ValidateURL checks that a string is a well-formed absolute URL:
// a parseable scheme from the allowed set plus a non-empty host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	if len(rawURL) > 2048 {
		return &ValidationError{Field: "url", Message: "URL too long (max 2048 characters)"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "Invalid URL structure"}
	}

	if !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return &ValidationError{Field: "url", Message: "Unsupported URL scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must contain a host"}
	}

	return nil
}

// ValidateShortCode checks if a custom short code has valid format.
// Any non-empty code from the alphabet is routable, down to one character.
func ValidateShortCode(code string) bool {
	if len(code) < 1 || len(code) > 32 {
		return false
	}
	return shortCodeRegex.MatchString(code)
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
