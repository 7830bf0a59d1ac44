package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare item id",
			in:   []string{"qtask", "260109-02F7K9M"},
			want: []string{"qtask", "show", "260109-02F7K9M"},
		},
		{
			name: "partial id prefix",
			in:   []string{"qtask", "260109"},
			want: []string{"qtask", "show", "260109"},
		},
		{
			name: "flag before the id",
			in:   []string{"qtask", "--no-interactive", "260109"},
			want: []string{"qtask", "--no-interactive", "show", "260109"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"qtask", "list"},
			want: []string{"qtask", "list"},
		},
		{
			name: "id after double dash",
			in:   []string{"qtask", "--", "260109"},
			want: []string{"qtask", "--", "show", "260109"},
		},
		{
			name: "no args",
			in:   []string{"qtask"},
			want: []string{"qtask"},
		},
		{
			name: "path is not an id",
			in:   []string{"qtask", "2026/notes"},
			want: []string{"qtask", "2026/notes"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rewriteDirectLookupArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLooksLikeItemID(t *testing.T) {
	for s, want := range map[string]bool{
		"260109-02F7K9M": true,
		"260109":         true,
		"list":           false,
		"26":             false,
		"2026/notes":     false,
		"26 0109":        false,
	} {
		if got := looksLikeItemID(s); got != want {
			t.Errorf("looksLikeItemID(%q) = %v", s, got)
		}
	}
}
