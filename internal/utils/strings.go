package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSeat uppercases and trims a seat label ("a1 " -> "A1").
func NormalizeSeat(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizePhone strips spaces and dashes so the same number always keys
// the same passenger row.
func NormalizePhone(s string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(s))
}
