package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugcSanitizer    = bluemonday.UGCPolicy()
	strictSanitizer = bluemonday.StrictPolicy()
)

// Sanitize cleans user generated HTML content to prevent XSS attacks.
func Sanitize(input string) string {
	return ugcSanitizer.Sanitize(input)
}

// SanitizeStrict strips all markup. Used for titles and tags where no
// HTML is ever expected.
func SanitizeStrict(input string) string {
	return strictSanitizer.Sanitize(input)
}
