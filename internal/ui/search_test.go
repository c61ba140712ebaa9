package ui

import (
	"testing"
)

func TestApplySearchNarrowsWithAncestors(t *testing.T) {
	m := createTestModel(t)

	m.applySearch("article")

	if !m.adapter.Filtered() {
		t.Fatalf("a non-empty query should filter the adapter")
	}
	// article plus its ancestor reading
	if m.itemsLen() != 2 {
		t.Fatalf("expected 2 visible rows, got %d", m.itemsLen())
	}
	if m.itemAt(0).ID != 6 || m.itemAt(1).ID != 7 {
		t.Fatalf("expected reading/article, got %d/%d", m.itemAt(0).ID, m.itemAt(1).ID)
	}
}

func TestApplySearchMatchesPathSegments(t *testing.T) {
	m := createTestModel(t)

	// "projects" is part of every child path, so the whole subtree matches.
	m.applySearch("projects")

	if m.itemsLen() != 5 {
		t.Fatalf("expected the projects subtree (5 rows), got %d", m.itemsLen())
	}
}

func TestApplySearchEmptyQueryClears(t *testing.T) {
	m := createTestModel(t)
	m.applySearch("article")
	m.applySearch("")

	if m.adapter.Filtered() {
		t.Fatalf("an empty query should clear the filter")
	}
	if m.itemsLen() != 8 {
		t.Fatalf("expected all 8 rows back, got %d", m.itemsLen())
	}
}

func TestSearchKeysDriveInput(t *testing.T) {
	m := createTestModel(t)

	m = update(m, keyMsg("/"))
	if !m.search.searching {
		t.Fatalf("/ should start a search")
	}

	for _, r := range "beta" {
		m = update(m, keyMsg(string(r)))
	}
	if !m.adapter.Filtered() {
		t.Fatalf("typing should live-apply the query")
	}

	m = update(m, keyMsg("enter"))
	if m.search.searching {
		t.Fatalf("enter should leave input mode")
	}
	if m.search.query != "beta" {
		t.Fatalf("enter must keep the query, got %q", m.search.query)
	}

	m = update(m, keyMsg("esc"))
	if m.adapter.Filtered() || m.search.query != "" {
		t.Fatalf("esc should clear the applied search")
	}
}

func TestSearchEscWhileTypingClears(t *testing.T) {
	m := createTestModel(t)
	m = update(m, keyMsg("/"))
	m = update(m, keyMsg("x"))
	m = update(m, keyMsg("esc"))

	if m.search.searching || m.adapter.Filtered() {
		t.Fatalf("esc while typing should drop the query and the filter")
	}
}
