package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"qtask/internal/model"
)

// ProcessAttachment turns user input into an attachment entry for it.
// URLs are recorded verbatim. Files are copied into the item's directory
// under the canonical attachment name; the returned string is what should
// be recorded in the front matter.
func ProcessAttachment(it *model.Item, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty attachment")
	}
	if model.IsURL(input) {
		return input, nil
	}
	if it.Path == "" {
		return "", fmt.Errorf("item %s has no file path", it.ID)
	}

	info, err := os.Stat(input)
	if err != nil {
		return "", fmt.Errorf("attachment %s: %w", input, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("attachment %s: not a regular file", input)
	}

	base := filepath.Base(input)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	name := model.AttachmentName{
		ItemID:  it.ID,
		Counter: it.NextAttachmentCounter(),
		Slug:    model.Slugify(stem),
		Ext:     ext,
	}.Filename()

	dst := filepath.Join(filepath.Dir(it.Path), name)
	if err := copyFile(input, dst); err != nil {
		return "", err
	}
	return name, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	return out.Close()
}
