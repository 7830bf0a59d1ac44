package store

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const gitTimeout = 5 * time.Second

func runGit(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return string(out), nil
}

// IsGitRepo reports whether dir is inside a git work tree.
func IsGitRepo(dir string) bool {
	out, err := runGit(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// GitUserName returns git's user.name as seen from dir.
func GitUserName(dir string) (string, bool) {
	out, err := runGit(dir, "config", "user.name")
	name := strings.TrimSpace(out)
	return name, err == nil && name != ""
}

// moveFile moves src to dst, using `git mv` when src is tracked so history
// follows the file, falling back to a plain rename.
func moveFile(src, dst string) error {
	dir := filepath.Dir(src)
	if IsGitRepo(dir) {
		if _, err := runGit(dir, "mv", src, dst); err == nil {
			return nil
		}
		// Untracked files make git mv fail; fall through.
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s: %w", filepath.Base(src), err)
	}
	return nil
}
