package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"qtask/internal/model"
)

const itemExt = ".md"

// WalkItems returns the paths of all open item files: .md files under the
// stack directory up to three levels deep, excluding the archive subtree
// and hidden directories.
func (c *Config) WalkItems() ([]string, error) {
	return walkMarkdown(c.StackPath(), 3, []string{c.ArchiveDir()})
}

// WalkArchived returns the paths of archived item files, up to two levels
// below the archive directory.
func (c *Config) WalkArchived() ([]string, error) {
	return walkMarkdown(c.ArchivePath(), 2, nil)
}

func walkMarkdown(root string, maxDepth int, excludeDirs []string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1

		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			for _, ex := range excludeDirs {
				if depth == 1 && name == ex {
					return filepath.SkipDir
				}
			}
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if depth <= maxDepth && strings.HasSuffix(d.Name(), itemExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// FindByID locates a single item by a case-insensitive id prefix, searching
// open items first and then the archive. Zero matches is an error; several
// matches is an ambiguity error naming the candidates.
func (c *Config) FindByID(partial string) (string, error) {
	partial = strings.ToUpper(strings.TrimSpace(partial))
	if partial == "" {
		return "", fmt.Errorf("empty item id")
	}

	open, err := c.WalkItems()
	if err != nil {
		return "", err
	}
	archived, err := c.WalkArchived()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, path := range append(open, archived...) {
		base := strings.TrimSuffix(filepath.Base(path), itemExt)
		if strings.HasPrefix(strings.ToUpper(base), partial) {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no item matching %q", partial)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = strings.TrimSuffix(filepath.Base(m), itemExt)
		}
		return "", fmt.Errorf("ambiguous id %q matches: %s", partial, strings.Join(names, ", "))
	}
}

// CreateItem writes a new item file into the stack directory (or the
// category subdirectory, created on demand) and returns its path.
func (c *Config) CreateItem(it *model.Item) (string, error) {
	dir := c.CategoryPath(it.Category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, it.Filename())
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("item file already exists: %s", path)
	}
	if err := it.Save(path); err != nil {
		return "", err
	}
	it.Path = path
	return path, nil
}

// LoadItems loads every path, skipping files that fail to parse.
func LoadItems(paths []string) []model.Item {
	items := make([]model.Item, 0, len(paths))
	for _, p := range paths {
		it, err := model.Load(p)
		if err != nil {
			continue
		}
		items = append(items, *it)
	}
	return items
}
