package store

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultIDPattern yields ids like "260109-02F7K9M": sortable date prefix,
// base32 time of day, three random chars.
const DefaultIDPattern = "%y%m%d-%T%RRR"

// Crockford base32: no I, L, O, U, so ids survive handwriting and uppercase
// matching stays unambiguous.
const base32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// GenerateID expands an id pattern. Tokens:
//
//	%y %m %d  two-digit year, month, day (UTC)
//	%j        day of year (001-366)
//	%T        seconds since midnight UTC, four base32 chars
//	%R        one random base32 char per consecutive R
//	%U        a ULID
//	%%        literal percent
//
// Unknown tokens pass through unchanged.
func GenerateID(pattern string) string {
	now := time.Now().UTC()
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			b.WriteRune(runes[i])
			continue
		}
		i++
		if i >= len(runes) {
			b.WriteByte('%')
			break
		}
		switch runes[i] {
		case 'y':
			b.WriteString(pad2(now.Year() % 100))
		case 'm':
			b.WriteString(pad2(int(now.Month())))
		case 'd':
			b.WriteString(pad2(now.Day()))
		case 'j':
			yday := strconv.Itoa(now.YearDay())
			for len(yday) < 3 {
				yday = "0" + yday
			}
			b.WriteString(yday)
		case 'T':
			secs := now.Hour()*3600 + now.Minute()*60 + now.Second()
			b.WriteString(base32Encode(uint64(secs), 4))
		case 'R':
			n := 1
			for i+1 < len(runes) && runes[i+1] == 'R' {
				i++
				n++
			}
			b.WriteString(base32Random(n))
		case 'U':
			b.WriteString(ulid.Make().String())
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// base32Encode renders v as exactly width base32 chars, most significant
// first. Values too large for the width wrap.
func base32Encode(v uint64, width int) string {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = base32Alphabet[v&31]
		v >>= 5
	}
	return string(out)
}

func base32Random(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = base32Alphabet[rand.IntN(32)]
	}
	return string(out)
}
