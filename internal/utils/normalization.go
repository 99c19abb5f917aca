package utils

import "strings"

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func NormalizeDifficulty(difficulty string) string {
	return strings.ToLower(strings.TrimSpace(difficulty))
}

// NormalizeOption trims an MCQ option so submitted answers compare cleanly
// against the parsed answer key.
func NormalizeOption(option string) string {
	return strings.TrimSpace(option)
}
