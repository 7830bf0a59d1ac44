package store

import (
	"strings"
	"testing"
)

func TestGenerateIDDefaultPattern(t *testing.T) {
	id := GenerateID(DefaultIDPattern)
	// YYMMDD-TTTTRRR: 6 date chars, hyphen, 4 time chars, 3 random chars.
	if len(id) != 14 {
		t.Fatalf("id %q has length %d, want 14", id, len(id))
	}
	if id[6] != '-' {
		t.Errorf("id %q missing separator", id)
	}
	for _, r := range id[:6] {
		if r < '0' || r > '9' {
			t.Errorf("date part of %q not numeric", id)
			break
		}
	}
	for _, r := range id[7:] {
		if !strings.ContainsRune(base32Alphabet, r) {
			t.Errorf("id %q contains %q outside the base32 alphabet", id, r)
		}
	}
}

func TestGenerateIDRandomLength(t *testing.T) {
	if got := GenerateID("%R"); len(got) != 1 {
		t.Errorf("%%R gave %q", got)
	}
	if got := GenerateID("%RRR"); len(got) != 3 {
		t.Errorf("%%RRR gave %q", got)
	}
}

func TestGenerateIDLiteralPassthrough(t *testing.T) {
	id := GenerateID("prefix-%y-suffix")
	if !strings.HasPrefix(id, "prefix-") || !strings.HasSuffix(id, "-suffix") {
		t.Errorf("id = %q", id)
	}
}

func TestGenerateIDEscapedPercent(t *testing.T) {
	if got := GenerateID("100%%"); got != "100%" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateIDUnknownToken(t *testing.T) {
	if got := GenerateID("%q"); got != "%q" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateIDDayOfYear(t *testing.T) {
	id := GenerateID("%j")
	if len(id) != 3 {
		t.Fatalf("got %q", id)
	}
}

func TestGenerateIDULIDToken(t *testing.T) {
	id := GenerateID("%U")
	if len(id) != 26 {
		t.Errorf("ULID should be 26 chars, got %q", id)
	}
}

func TestBase32EncodeWidth(t *testing.T) {
	if got := base32Encode(0, 4); got != "0000" {
		t.Errorf("got %q", got)
	}
	if got := base32Encode(31, 2); got != "0Z" {
		t.Errorf("got %q", got)
	}
	if got := base32Encode(32, 2); got != "10" {
		t.Errorf("got %q", got)
	}
}
