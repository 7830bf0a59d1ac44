package model

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

var (
	ErrNoFrontMatter           = errors.New("missing front matter")
	ErrUnterminatedFrontMatter = errors.New("unterminated front matter")
)

// ParseItem splits an item file into front matter and body. The file must
// start with a "---" line; the front matter runs until the next "---" line.
// Blank lines between the closing delimiter and the body are not part of
// the body.
func ParseItem(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontMatterDelim {
		return fm, "", ErrNoFrontMatter
	}

	var yamlSrc strings.Builder
	bodyStart := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == frontMatterDelim {
			bodyStart = i + 1
			break
		}
		yamlSrc.WriteString(lines[i])
	}
	if bodyStart < 0 {
		return fm, "", ErrUnterminatedFrontMatter
	}

	if err := yaml.Unmarshal([]byte(yamlSrc.String()), &fm); err != nil {
		return fm, "", err
	}
	if fm.Status == "" {
		fm.Status = StatusOpen
	}

	body := strings.Join(lines[bodyStart:], "")
	body = strings.TrimLeft(body, "\r\n")
	return fm, body, nil
}

// SerializeItem renders an item file: front matter between "---" lines,
// one blank line, then the body.
func SerializeItem(fm FrontMatter, body string) (string, error) {
	y, err := yaml.Marshal(&fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(frontMatterDelim)
	b.WriteString("\n")
	b.Write(y)
	b.WriteString(frontMatterDelim)
	b.WriteString("\n\n\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}
