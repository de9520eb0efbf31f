// Package extraction classifies raw job-description text into categorized
// skill sets using a static keyword table.
package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// wordBoundaryMaxLen is the keyword length at or below which matching
// requires word boundaries. This keeps "os" from matching inside "cost"
// while still letting "react" match "reactjs".
const wordBoundaryMaxLen = 3

// Extractor matches an injected keyword table against lower-cased text.
// Extraction is deterministic: identical text always yields an identical
// skill set.
type Extractor struct {
	entries  []KeywordEntry
	patterns []*regexp.Regexp
}

// NewExtractor compiles matchers for the given keyword table.
func NewExtractor(entries []KeywordEntry) (*Extractor, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}

	patterns := make([]*regexp.Regexp, len(entries))
	for i, entry := range entries {
		kw := strings.ToLower(entry.Keyword)
		if kw == "" {
			return nil, fmt.Errorf("keyword table entry %d has empty keyword", i)
		}

		expr := regexp.QuoteMeta(kw)
		if len(kw) <= wordBoundaryMaxLen {
			expr = `\b` + expr + `\b`
		}
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile matcher for keyword %q: %w", entry.Keyword, err)
		}
		patterns[i] = pattern
	}

	return &Extractor{entries: entries, patterns: patterns}, nil
}

// NewDefaultExtractor builds an Extractor over the built-in keyword table.
func NewDefaultExtractor() *Extractor {
	ex, err := NewExtractor(DefaultKeywordTable())
	if err != nil {
		// The built-in table is static; a compile failure is a programming error.
		panic(fmt.Sprintf("default keyword table invalid: %v", err))
	}
	return ex
}

// Extract classifies text into a SkillSet. Empty or whitespace-only input
// yields an empty set; the fallback substitution is the orchestrator's job.
func (e *Extractor) Extract(text string) types.SkillSet {
	var result types.SkillSet
	if strings.TrimSpace(text) == "" {
		return result
	}

	lowered := strings.ToLower(text)
	for i, entry := range e.entries {
		if e.patterns[i].MatchString(lowered) {
			result.Add(entry.Category, entry.Canonical)
		}
	}

	return result
}

// FallbackSkillSet returns the fixed generic bucket used when extraction
// finds no skills anywhere.
func FallbackSkillSet() types.SkillSet {
	var result types.SkillSet
	for _, s := range FallbackSkills() {
		result.Add(types.CategoryOther, s)
	}
	return result
}
