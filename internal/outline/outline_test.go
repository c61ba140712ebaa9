package outline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
title: Team notes
items:
  - title: Projects
    updated: 2026-08-02
    items:
      - title: Atlas
        note: storage first
        items: []
      - title: Zephyr
        disabled: true
  - title: Inbox
    expanded: true
    updated: 2026-08-14T09:30:00Z
    items:
      - title: Review rota
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Team notes" {
		t.Fatalf("Title = %q", doc.Title)
	}
	if doc.Count() != 5 {
		t.Fatalf("Count = %d, want 5", doc.Count())
	}

	projects := doc.Items[0]
	if !projects.Branch() {
		t.Fatal("Projects should be a branch")
	}
	if got := projects.UpdatedTime(); got != time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("UpdatedTime = %v", got)
	}

	atlas := projects.Items[0]
	if !atlas.Branch() {
		t.Fatal("an empty items list still makes a branch")
	}
	if zephyr := projects.Items[1]; zephyr.Branch() || !zephyr.Disabled {
		t.Fatalf("Zephyr: branch=%v disabled=%v", zephyr.Branch(), zephyr.Disabled)
	}

	inbox := doc.Items[1]
	if !inbox.Expanded {
		t.Fatal("Inbox should carry the expanded flag")
	}
	if inbox.UpdatedTime().IsZero() {
		t.Fatal("RFC3339 updated date should parse")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"not yaml", "items: [", "parse outline"},
		{"missing title", "items:\n  - note: no title here\n", "items[0]: missing title"},
		{"nested missing title", "items:\n  - title: a\n    items:\n      - title: \" \"\n", "items[0].items[0]: missing title"},
		{"bad date", "items:\n  - title: a\n    updated: yesterday\n", "unparseable updated date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Count() != 5 {
		t.Fatalf("Count = %d, want 5", doc.Count())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - note: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should name the file, got %v", err)
	}
}

func TestSample(t *testing.T) {
	doc := Sample()
	if len(doc.Items) == 0 {
		t.Fatal("sample outline is empty")
	}
	if err := validate(doc.Items, "items"); err != nil {
		t.Fatalf("sample outline does not validate: %v", err)
	}
	var hasBranch, hasDisabled bool
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			hasBranch = hasBranch || n.Branch()
			hasDisabled = hasDisabled || n.Disabled
			walk(n.Items)
		}
	}
	walk(doc.Items)
	if !hasBranch || !hasDisabled {
		t.Fatalf("sample should exercise branches and disabled rows: branch=%v disabled=%v", hasBranch, hasDisabled)
	}
}
