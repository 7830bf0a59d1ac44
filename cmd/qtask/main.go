package main

import (
	"os"
	"strings"

	"qtask/internal/cli"
)

func looksLikeItemID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	// IDs start with a date part (e.g. "260109-02F7K9M"). Keep it permissive;
	// users paste partial prefixes.
	if s[0] < '0' || s[0] > '9' {
		return false
	}
	return !strings.ContainsAny(s, " /")
}

// rewriteDirectLookupArgs makes `qtask <item-id>` behave like `qtask show <item-id>`.
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. The first positional token is found by skipping flags (users
// often pass persistent flags first).
func rewriteDirectLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	boolFlags := map[string]bool{
		"--no-interactive": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && looksLikeItemID(argv[i+1]) {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			continue
		}
		if looksLikeItemID(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
