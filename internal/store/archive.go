package store

import (
	"fmt"
	"os"
	"path/filepath"

	"qtask/internal/model"
)

// trashDir receives deleted items instead of removing them outright.
const trashDir = ".trash"

// RenameItem moves an item file to a new name in the same directory.
func RenameItem(path, newName string) (string, error) {
	dst := filepath.Join(filepath.Dir(path), newName)
	if dst == path {
		return path, nil
	}
	if err := moveFile(path, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// ArchiveItem moves an item (and its attachments) into the archive,
// preserving its category subdirectory. Attachment move failures are
// returned as warnings, never as errors.
func (c *Config) ArchiveItem(path string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}

	destDir := c.ArchivePath()
	if it.Category != "" {
		destDir = filepath.Join(destDir, it.Category)
	}
	return c.moveItem(it, path, destDir)
}

// UnarchiveItem moves an archived item back to its category directory (or
// the stack root).
func (c *Config) UnarchiveItem(path, category string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}
	return c.moveItem(it, path, c.CategoryPath(category))
}

// MoveToCategory relocates an item to a category subdirectory; empty
// category means the stack root. The front matter category is assumed to
// already be updated by the caller.
func (c *Config) MoveToCategory(path, category string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}
	destDir := c.CategoryPath(category)
	if filepath.Dir(path) == destDir {
		return path, nil, nil
	}
	return c.moveItem(it, path, destDir)
}

// TrashItem moves an item file and its attachments into the trash
// directory under the stack root.
func (c *Config) TrashItem(path string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}
	return c.moveItem(it, path, filepath.Join(c.StackPath(), trashDir))
}

func (c *Config) moveItem(it *model.Item, path, destDir string) (string, []string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create %s: %w", destDir, err)
	}

	dst := filepath.Join(destDir, filepath.Base(path))
	if err := moveFile(path, dst); err != nil {
		return "", nil, err
	}

	warnings := MoveAttachments(it.Attachments, filepath.Dir(path), destDir)
	return dst, warnings, nil
}

// MoveAttachments moves each non-URL attachment from one directory to
// another. Every failure becomes a warning; the item move is never rolled
// back over a missing attachment.
func MoveAttachments(attachments []string, fromDir, toDir string) []string {
	var warnings []string
	for _, a := range attachments {
		if model.IsURL(a) {
			continue
		}
		src := filepath.Join(fromDir, a)
		if _, err := os.Stat(src); err != nil {
			warnings = append(warnings, fmt.Sprintf("attachment missing: %s", a))
			continue
		}
		if err := moveFile(src, filepath.Join(toDir, a)); err != nil {
			warnings = append(warnings, fmt.Sprintf("attachment %s: %v", a, err))
		}
	}
	return warnings
}
