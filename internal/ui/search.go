package ui

import (
	"strings"

	"nestview/internal/infra/logx"
)

// filterCfg converts the configured thresholds.
func (m *Model) filterCfg() FilterConfig {
	return FilterConfig{
		MinCoverage: m.cfg.Filter.MinCoverage,
		MaxSpread:   m.cfg.Filter.MaxSpread,
		MaxResults:  m.cfg.Filter.MaxResults,
	}
}

// applySearch matches the query against every item path and narrows the
// adapter to the matches. Substring hits win over fuzzy hits; an empty query
// clears the filter.
func (m *Model) applySearch(query string) {
	m.search.query = query
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		m.adapter.SetFilter(nil)
		m.afterStructureChange()
		return
	}

	items := m.adapter.Items()
	base := make([]string, len(items))
	ids := make([]int, len(items))
	for i, it := range items {
		base[i] = strings.ToLower(m.adapter.PathByID(it.ID))
		ids[i] = it.ID
	}

	hits := filterBySubstring(q, base, m.filterCfg())
	if len(hits) == 0 {
		hits = filterByFuzzy(q, base, m.filterCfg())
	}

	matched := make(map[int]bool, len(hits))
	for _, i := range hits {
		matched[ids[i]] = true
	}
	m.adapter.SetFilter(matched)
	m.afterStructureChange()

	logx.Debugw("search applied", map[string]any{"query": q, "hits": len(hits)})
}

// clearSearch drops the query and the filter.
func (m *Model) clearSearch() {
	m.search.searching = false
	m.search.query = ""
	m.search.input.SetValue("")
	m.search.input.Blur()
	m.adapter.SetFilter(nil)
	m.afterStructureChange()
}
