// Package editor launches the user's external editor on an item file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"unicode"
)

// Open runs the editor command with path appended, attached to the caller's
// terminal, and waits for it to exit. The command may contain arguments and
// shell-style quoting ("code --wait").
func Open(command, path string) error {
	args := splitCommand(command)
	if len(args) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", args[0], err)
	}
	return nil
}

// splitCommand splits an editor command into argv, honoring single quotes,
// double quotes, and backslash escapes outside single quotes.
func splitCommand(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
	}

	for _, r := range s {
		if escaped {
			cur = append(cur, r)
			escaped = false
			continue
		}
		if r == '\\' && !inSingle {
			escaped = true
			continue
		}
		if r == '\'' && !inDouble {
			inSingle = !inSingle
			continue
		}
		if r == '"' && !inSingle {
			inDouble = !inDouble
			continue
		}
		if !inSingle && !inDouble && unicode.IsSpace(r) {
			flush()
			continue
		}
		cur = append(cur, r)
	}

	flush()
	return out
}
