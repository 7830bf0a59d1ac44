package model

import (
	"strconv"
	"strings"
)

const attachmentMarker = "-Attachment-"

// AttachmentName is the parsed form of an attachment filename:
// "{itemID}-Attachment-{counter}-{slug}.{ext}". The slug and extension may
// be empty. This type is the single authority on the naming convention.
type AttachmentName struct {
	ItemID  string
	Counter int
	Slug    string
	Ext     string
}

// ParseAttachmentName parses name, reporting whether it follows the
// attachment naming convention.
func ParseAttachmentName(name string) (AttachmentName, bool) {
	i := strings.Index(name, attachmentMarker)
	if i <= 0 {
		return AttachmentName{}, false
	}
	an := AttachmentName{ItemID: name[:i]}

	rest := name[i+len(attachmentMarker):]
	numEnd := 0
	for numEnd < len(rest) && rest[numEnd] >= '0' && rest[numEnd] <= '9' {
		numEnd++
	}
	if numEnd == 0 {
		return AttachmentName{}, false
	}
	n, err := strconv.Atoi(rest[:numEnd])
	if err != nil || n < 1 {
		return AttachmentName{}, false
	}
	an.Counter = n

	rest = rest[numEnd:]
	if rest != "" {
		if !strings.HasPrefix(rest, "-") && !strings.HasPrefix(rest, ".") {
			return AttachmentName{}, false
		}
		if dot := strings.LastIndexByte(rest, '.'); dot >= 0 {
			an.Ext = rest[dot+1:]
			rest = rest[:dot]
		}
		an.Slug = strings.TrimPrefix(rest, "-")
	}
	return an, true
}

// Filename renders the canonical attachment filename.
func (a AttachmentName) Filename() string {
	var b strings.Builder
	b.WriteString(a.ItemID)
	b.WriteString(attachmentMarker)
	b.WriteString(strconv.Itoa(a.Counter))
	if a.Slug != "" {
		b.WriteByte('-')
		b.WriteString(a.Slug)
	}
	if a.Ext != "" {
		b.WriteByte('.')
		b.WriteString(a.Ext)
	}
	return b.String()
}

// AttachmentPrefix returns the filename prefix shared by every attachment
// of the given item, for directory scans.
func AttachmentPrefix(itemID string) string {
	return itemID + attachmentMarker
}
