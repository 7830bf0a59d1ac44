package model

import "testing"

func TestParseAttachmentName(t *testing.T) {
	an, ok := ParseAttachmentName("260109-AAA-Attachment-3-screenshot.png")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if an.ItemID != "260109-AAA" || an.Counter != 3 || an.Slug != "screenshot" || an.Ext != "png" {
		t.Errorf("parsed %+v", an)
	}
}

func TestParseAttachmentNameNoExt(t *testing.T) {
	an, ok := ParseAttachmentName("260109-AAA-Attachment-1-notes")
	if !ok || an.Ext != "" || an.Slug != "notes" {
		t.Errorf("parsed %+v ok=%v", an, ok)
	}
}

func TestParseAttachmentNameRejects(t *testing.T) {
	for _, name := range []string{
		"plain-file.png",
		"-Attachment-1-x.png",
		"260109-AAA-Attachment--x.png",
		"260109-AAA-Attachment-0-x.png",
	} {
		if _, ok := ParseAttachmentName(name); ok {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestAttachmentFilenameRoundTrip(t *testing.T) {
	an := AttachmentName{ItemID: "260109-AAA", Counter: 12, Slug: "design-doc", Ext: "pdf"}
	name := an.Filename()
	if name != "260109-AAA-Attachment-12-design-doc.pdf" {
		t.Fatalf("name = %q", name)
	}
	back, ok := ParseAttachmentName(name)
	if !ok || back != an {
		t.Errorf("round trip: %+v ok=%v", back, ok)
	}
}

func TestAttachmentPrefix(t *testing.T) {
	if got := AttachmentPrefix("260109-AAA"); got != "260109-AAA-Attachment-" {
		t.Errorf("prefix = %q", got)
	}
}
