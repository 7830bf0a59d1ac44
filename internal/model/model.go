// Package model defines the item type stored on disk: a Markdown file with
// YAML front matter. The tree of item files is the source of truth; nothing
// here touches a database.
package model

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Status of an item. The zero value is open.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// FrontMatter is the YAML header of an item file.
type FrontMatter struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Author    string    `yaml:"author"`
	CreatedAt time.Time `yaml:"created_at"`
	Status    Status    `yaml:"status"`
	Labels    []string  `yaml:"labels,omitempty"`
	// Category matches the parent subdirectory name; empty means the item
	// lives at the stack root.
	Category string `yaml:"category,omitempty"`
	// Attachments are filenames next to the item file, or http(s) URLs.
	Attachments []string `yaml:"attachments,omitempty"`
}

// Item is a parsed item file.
type Item struct {
	FrontMatter
	Body string
	// Path is set when the item was loaded from disk.
	Path string
}

// NewItem creates an in-memory item with an empty body.
func NewItem(fm FrontMatter) *Item {
	if fm.Status == "" {
		fm.Status = StatusOpen
	}
	return &Item{FrontMatter: fm}
}

// Load reads and parses an item file.
func Load(path string) (*Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item %s: %w", path, err)
	}
	fm, body, err := ParseItem(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse item %s: %w", path, err)
	}
	return &Item{FrontMatter: fm, Body: body, Path: path}, nil
}

// Save writes the item to path.
func (it *Item) Save(path string) error {
	content, err := SerializeItem(it.FrontMatter, it.Body)
	if err != nil {
		return fmt.Errorf("serialize item %s: %w", it.ID, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write item %s: %w", path, err)
	}
	return nil
}

// Filename returns the canonical filename: "{id}-{slug}.md", or "{id}.md"
// when the title slugs to nothing.
func (it *Item) Filename() string {
	slug := Slugify(it.Title)
	if slug == "" {
		return it.ID + ".md"
	}
	return it.ID + "-" + slug + ".md"
}

// AddLabel appends a label unless it is already present.
func (it *Item) AddLabel(label string) {
	for _, l := range it.Labels {
		if l == label {
			return
		}
	}
	it.Labels = append(it.Labels, label)
}

// RemoveLabel drops all occurrences of label.
func (it *Item) RemoveLabel(label string) {
	kept := it.Labels[:0]
	for _, l := range it.Labels {
		if l != label {
			kept = append(kept, l)
		}
	}
	it.Labels = kept
}

// AddAttachment records an attachment entry (filename or URL).
func (it *Item) AddAttachment(a string) {
	it.Attachments = append(it.Attachments, a)
}

// RemoveAttachment removes the entry at index and returns it.
func (it *Item) RemoveAttachment(index int) (string, bool) {
	if index < 0 || index >= len(it.Attachments) {
		return "", false
	}
	a := it.Attachments[index]
	it.Attachments = append(it.Attachments[:index], it.Attachments[index+1:]...)
	return a, true
}

// NextAttachmentCounter returns the counter for the next attachment file:
// one past the highest counter parsed from existing non-URL attachments.
func (it *Item) NextAttachmentCounter() int {
	max := 0
	for _, a := range it.Attachments {
		if IsURL(a) {
			continue
		}
		if an, ok := ParseAttachmentName(a); ok && an.Counter > max {
			max = an.Counter
		}
	}
	return max + 1
}

// IsURL reports whether s is an http(s) URL. Only http and https count;
// everything else is treated as a file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
