package utils

import "strings"

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Summarize trims s and shortens it for log lines.
func Summarize(s string) string {
	value := strings.TrimSpace(s)
	const limit = 120
	if len([]rune(value)) <= limit {
		return value
	}
	return Truncate(value, limit) + "..."
}
