// Package types provides type definitions for structured data used throughout the placement-readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category identifies one of the fixed skill categories used by the extractor.
type Category string

// The closed set of skill categories. Other is the fallback bucket and never
// counts toward category-based score bonuses.
const (
	CategoryCoreCS    Category = "Core CS"
	CategoryLanguages Category = "Languages"
	CategoryWeb       Category = "Web"
	CategoryData      Category = "Data"
	CategoryCloud     Category = "Cloud/DevOps"
	CategoryTesting   Category = "Testing"
	CategoryOther     Category = "Other"
)

// Categories lists all categories in their canonical display order.
func Categories() []Category {
	return []Category{
		CategoryCoreCS,
		CategoryLanguages,
		CategoryWeb,
		CategoryData,
		CategoryCloud,
		CategoryTesting,
		CategoryOther,
	}
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryCoreCS, CategoryLanguages, CategoryWeb, CategoryData,
		CategoryCloud, CategoryTesting, CategoryOther:
		return true
	}
	return false
}

// SkillSet holds canonical skill names grouped by category. A category is
// considered present only when its list is non-empty; within a category,
// insertion order (first match wins) is preserved and duplicates are
// collapsed by canonical name.
type SkillSet struct {
	CoreCS    []string `json:"core_cs,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Web       []string `json:"web,omitempty"`
	Data      []string `json:"data,omitempty"`
	Cloud     []string `json:"cloud,omitempty"`
	Testing   []string `json:"testing,omitempty"`
	Other     []string `json:"other,omitempty"`
}

// slot returns a pointer to the list backing the given category, or nil for
// an unknown category.
func (s *SkillSet) slot(c Category) *[]string {
	switch c {
	case CategoryCoreCS:
		return &s.CoreCS
	case CategoryLanguages:
		return &s.Languages
	case CategoryWeb:
		return &s.Web
	case CategoryData:
		return &s.Data
	case CategoryCloud:
		return &s.Cloud
	case CategoryTesting:
		return &s.Testing
	case CategoryOther:
		return &s.Other
	}
	return nil
}

// Add appends a canonical skill name to the given category, dropping
// duplicates. Unknown categories are ignored.
func (s *SkillSet) Add(c Category, name string) {
	list := s.slot(c)
	if list == nil || name == "" {
		return
	}
	for _, existing := range *list {
		if existing == name {
			return
		}
	}
	*list = append(*list, name)
}

// Get returns the skill list for a category (nil when absent or unknown).
func (s *SkillSet) Get(c Category) []string {
	list := s.slot(c)
	if list == nil {
		return nil
	}
	return *list
}

// HasCategory reports whether the category has at least one skill.
func (s *SkillSet) HasCategory(c Category) bool {
	return len(s.Get(c)) > 0
}

// Has reports whether the exact canonical skill name appears in any category.
func (s *SkillSet) Has(name string) bool {
	for _, skill := range s.All() {
		if skill == name {
			return true
		}
	}
	return false
}

// All returns every skill across categories, flattened in canonical category
// order with per-category insertion order preserved.
func (s *SkillSet) All() []string {
	var all []string
	for _, c := range Categories() {
		all = append(all, s.Get(c)...)
	}
	return all
}

// CategoryCount returns the number of non-empty categories excluding Other.
// This is the count the readiness score rewards.
func (s *SkillSet) CategoryCount() int {
	count := 0
	for _, c := range Categories() {
		if c == CategoryOther {
			continue
		}
		if s.HasCategory(c) {
			count++
		}
	}
	return count
}

// IsEmpty reports whether no skills were found in any category.
func (s *SkillSet) IsEmpty() bool {
	return len(s.All()) == 0
}
