package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleFile = `---
id: 260109-02F7K9M
title: Fix login bug
author: Alice
created_at: 2026-01-09T10:30:00Z
status: open
labels:
  - bug
  - auth
category: backend
---


Steps to reproduce:

1. Log in
2. Observe failure
`

func TestParseItem(t *testing.T) {
	fm, body, err := ParseItem(sampleFile)
	if err != nil {
		t.Fatal(err)
	}
	if fm.ID != "260109-02F7K9M" {
		t.Errorf("id = %q", fm.ID)
	}
	if fm.Title != "Fix login bug" {
		t.Errorf("title = %q", fm.Title)
	}
	if fm.Status != StatusOpen {
		t.Errorf("status = %q", fm.Status)
	}
	if len(fm.Labels) != 2 || fm.Labels[0] != "bug" {
		t.Errorf("labels = %v", fm.Labels)
	}
	if fm.Category != "backend" {
		t.Errorf("category = %q", fm.Category)
	}
	if !strings.HasPrefix(body, "Steps to reproduce:") {
		t.Errorf("body starts with %q", body[:min(len(body), 30)])
	}
}

func TestParseItemMissingFrontMatter(t *testing.T) {
	_, _, err := ParseItem("just a body\n")
	if !errors.Is(err, ErrNoFrontMatter) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseItemUnterminated(t *testing.T) {
	_, _, err := ParseItem("---\nid: x\ntitle: y\n")
	if !errors.Is(err, ErrUnterminatedFrontMatter) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseItemDefaultsStatusOpen(t *testing.T) {
	fm, _, err := ParseItem("---\nid: x\ntitle: y\nauthor: a\ncreated_at: 2026-01-09T10:30:00Z\n---\n")
	if err != nil {
		t.Fatal(err)
	}
	if fm.Status != StatusOpen {
		t.Errorf("status = %q", fm.Status)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	fm := FrontMatter{
		ID:        "260109-AAA",
		Title:     "A title",
		Author:    "Bob",
		CreatedAt: time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC),
		Status:    StatusClosed,
		Labels:    []string{"one"},
		Category:  "misc",
	}
	out, err := SerializeItem(fm, "Body text.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "---\n") {
		t.Fatalf("output does not start with delimiter: %q", out[:10])
	}

	got, body, err := ParseItem(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != fm.ID || got.Title != fm.Title || got.Status != fm.Status || got.Category != fm.Category {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if body != "Body text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSerializeOmitsEmptyOptionalFields(t *testing.T) {
	fm := FrontMatter{ID: "x", Title: "y", Author: "a", CreatedAt: time.Now().UTC(), Status: StatusOpen}
	out, err := SerializeItem(fm, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"labels:", "category:", "attachments:"} {
		if strings.Contains(out, key) {
			t.Errorf("output contains %q:\n%s", key, out)
		}
	}
}
