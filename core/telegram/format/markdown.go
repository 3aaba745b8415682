// Package format contains text helpers for Telegram message rendering.
package format

import "strings"

var markdownReplacer = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown escapes user-supplied text for Markdown parse mode so
// stray formatting characters cannot break the surrounding template.
func EscapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
