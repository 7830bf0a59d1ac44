package tui

import "strings"

// ParsePaths splits user-entered attachment paths. Separators are unescaped
// spaces and line breaks (CR, LF, or CRLF counting once); a backslash
// escapes the following character, and a trailing backslash stays literal.
// Tokens are trimmed; empty tokens are dropped.
func ParsePaths(s string) []string {
	var out []string
	var cur []rune

	flush := func() {
		token := strings.TrimSpace(string(cur))
		cur = cur[:0]
		if token != "" {
			out = append(out, token)
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i == len(runes)-1 {
				cur = append(cur, '\\')
				continue
			}
			i++
			cur = append(cur, runes[i])
		case ' ':
			flush()
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			flush()
		case '\n':
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}
