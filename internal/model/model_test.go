package model

import (
	"testing"
	"time"
)

func sampleItem(id string) *Item {
	return NewItem(FrontMatter{
		ID:        id,
		Title:     "Test Item",
		Author:    "Test",
		CreatedAt: time.Now().UTC(),
	})
}

func TestFilename(t *testing.T) {
	it := sampleItem("260109-02F7K9M")
	it.Title = "Fix Login Bug"
	if got := it.Filename(); got != "260109-02F7K9M-fix-login-bug.md" {
		t.Errorf("filename = %q", got)
	}
}

func TestFilenameEmptySlug(t *testing.T) {
	it := sampleItem("260109-02F7K9M")
	it.Title = "!!!"
	if got := it.Filename(); got != "260109-02F7K9M.md" {
		t.Errorf("filename = %q", got)
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("http://example.com") || !IsURL("https://example.com/path?q=1") {
		t.Error("http(s) should be URLs")
	}
	for _, s := range []string{"ftp://example.com", "/path/to/file", "260109-AAA-Attachment-1-x.png"} {
		if IsURL(s) {
			t.Errorf("%q should not be a URL", s)
		}
	}
}

func TestAddLabelDedup(t *testing.T) {
	it := sampleItem("x")
	it.AddLabel("bug")
	it.AddLabel("bug")
	it.AddLabel("auth")
	if len(it.Labels) != 2 {
		t.Errorf("labels = %v", it.Labels)
	}
	it.RemoveLabel("bug")
	if len(it.Labels) != 1 || it.Labels[0] != "auth" {
		t.Errorf("labels = %v", it.Labels)
	}
}

func TestRemoveAttachment(t *testing.T) {
	it := sampleItem("x")
	it.Attachments = []string{"a", "b", "c"}
	got, ok := it.RemoveAttachment(1)
	if !ok || got != "b" {
		t.Fatalf("removed %q ok=%v", got, ok)
	}
	if len(it.Attachments) != 2 || it.Attachments[1] != "c" {
		t.Errorf("attachments = %v", it.Attachments)
	}
	if _, ok := it.RemoveAttachment(10); ok {
		t.Error("out-of-range removal should fail")
	}
}

func TestNextAttachmentCounter(t *testing.T) {
	it := sampleItem("260109-AAA")
	if it.NextAttachmentCounter() != 1 {
		t.Error("empty should start at 1")
	}
	it.Attachments = []string{
		"260109-AAA-Attachment-1-file.txt",
		"260109-AAA-Attachment-5-image.png",
		"https://example.com",
	}
	if got := it.NextAttachmentCounter(); got != 6 {
		t.Errorf("counter = %d", got)
	}
	it.Attachments = []string{"https://example.com", "http://test.com"}
	if got := it.NextAttachmentCounter(); got != 1 {
		t.Errorf("urls only: counter = %d", got)
	}
}
