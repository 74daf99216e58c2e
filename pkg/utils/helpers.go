package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the rest,
// so "light rain" and "LIGHT RAIN" both become "Light Rain".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// CleanCity trims surrounding whitespace from user input
func CleanCity(s string) string {
	return strings.TrimSpace(s)
}
