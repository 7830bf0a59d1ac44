package model

import "strings"

const maxSlugLen = 50

// Slugify turns a title into a filename-safe slug: lowercase ASCII letters
// and digits, runs of anything else collapsed to a single hyphen. Slugs are
// capped at 50 characters, cut back to a word boundary when one exists.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) <= maxSlugLen {
		return slug
	}

	cut := slug[:maxSlugLen]
	if i := strings.LastIndexByte(cut, '-'); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, "-")
}
