package tui

import (
	"reflect"
	"testing"
)

func TestParsePaths(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "/tmp/file.txt", []string{"/tmp/file.txt"}},
		{"multiple", "a.txt b.txt c.txt", []string{"a.txt", "b.txt", "c.txt"}},
		{"escaped space", `My\ Document.pdf`, []string{"My Document.pdf"}},
		{"mixed", `a.txt My\ File.png b.txt`, []string{"a.txt", "My File.png", "b.txt"}},
		{"empty", "", nil},
		{"only spaces", "     ", nil},
		{"newline separator", "x y\nz", []string{"x", "y", "z"}},
		{"carriage return", "a\rb", []string{"a", "b"}},
		{"crlf counts once", "a\r\nb", []string{"a", "b"}},
		{"trailing backslash", `a\`, []string{`a\`}},
		{"escaped backslash", `a\\b`, []string{`a\b`}},
		{"collapsed separators", "a  \n\n  b", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ParsePaths(c.in); !reflect.DeepEqual(got, c.want) {
				t.Errorf("ParsePaths(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}
