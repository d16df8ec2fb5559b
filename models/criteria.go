package models

import "sort"

// ═══════════════════════════════════════════════════════════
// StringSet
// ═══════════════════════════════════════════════════════════

// StringSet backs the per-dimension filter selections. Within one
// dimension selected values are ORed; dimensions are ANDed together.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s StringSet) Add(v string)    { s[v] = struct{}{} }
func (s StringSet) Remove(v string) { delete(s, v) }
func (s StringSet) Len() int        { return len(s) }

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// HasAny reports whether any of the given values is in the set.
func (s StringSet) HasAny(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Values returns the members in sorted order, for deterministic output.
func (s StringSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ═══════════════════════════════════════════════════════════
// Filter Criteria
// ═══════════════════════════════════════════════════════════

// FilterKind names one removable criterion, used by the active-filter
// tags in the UI.
type FilterKind string

const (
	FilterBrand    FilterKind = "brand"
	FilterColor    FilterKind = "color"
	FilterSize     FilterKind = "size"
	FilterMaterial FilterKind = "material"
	FilterSale     FilterKind = "sale"
	FilterSearch   FilterKind = "search"
)

// FilterCriteria is the working set the user edits before applying.
// Created once per session, mutated in place, cleared wholesale.
type FilterCriteria struct {
	Brands      StringSet
	Colors      StringSet
	Sizes       StringSet
	Materials   StringSet
	OnSale      bool
	SearchQuery string
}

func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Brands:    NewStringSet(),
		Colors:    NewStringSet(),
		Sizes:     NewStringSet(),
		Materials: NewStringSet(),
	}
}

// Clear resets every criterion, the "clear filters" action.
func (c *FilterCriteria) Clear() {
	*c = NewFilterCriteria()
}

// RemoveFilter drops a single active criterion, the "×" on a filter tag.
func (c *FilterCriteria) RemoveFilter(kind FilterKind, value string) {
	switch kind {
	case FilterBrand:
		c.Brands.Remove(value)
	case FilterColor:
		c.Colors.Remove(value)
	case FilterSize:
		c.Sizes.Remove(value)
	case FilterMaterial:
		c.Materials.Remove(value)
	case FilterSale:
		c.OnSale = false
	case FilterSearch:
		c.SearchQuery = ""
	}
}

// HasActive reports whether any criterion constrains the result.
func (c FilterCriteria) HasActive() bool {
	return c.Brands.Len() > 0 ||
		c.Colors.Len() > 0 ||
		c.Sizes.Len() > 0 ||
		c.Materials.Len() > 0 ||
		c.OnSale ||
		c.SearchQuery != ""
}
