// Package outline loads outline documents from YAML files.
package outline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is a whole outline file.
type Document struct {
	Title string `yaml:"title,omitempty"`
	Items []Node `yaml:"items"`
}

// Node is one outline entry. A node with an items key is a branch, even when
// the list is empty; a node without one is a leaf.
type Node struct {
	Title    string `yaml:"title"`
	Note     string `yaml:"note,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
	Updated  string `yaml:"updated,omitempty"`
	Items    []Node `yaml:"items,omitempty"`
}

// Branch reports whether the node carries a child list.
func (n Node) Branch() bool { return n.Items != nil }

// UpdatedTime parses the updated field, zero when absent or unparseable.
func (n Node) UpdatedTime() time.Time { return parseTime(n.Updated) }

// Load reads and validates an outline file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read outline: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates outline YAML.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse outline: %w", err)
	}
	if err := validate(doc.Items, "items"); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Count reports the total number of nodes in the document.
func (d Document) Count() int {
	var count func(nodes []Node) int
	count = func(nodes []Node) int {
		n := len(nodes)
		for _, node := range nodes {
			n += count(node.Items)
		}
		return n
	}
	return count(d.Items)
}

func validate(nodes []Node, path string) error {
	for i, n := range nodes {
		at := fmt.Sprintf("%s[%d]", path, i)
		if strings.TrimSpace(n.Title) == "" {
			return fmt.Errorf("%s: missing title", at)
		}
		if n.Updated != "" && parseTime(n.Updated).IsZero() {
			return fmt.Errorf("%s: unparseable updated date %q", at, n.Updated)
		}
		if err := validate(n.Items, at+".items"); err != nil {
			return err
		}
	}
	return nil
}

func parseTime(s string) time.Time {
	// Try RFC3339, fall back to date only
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
