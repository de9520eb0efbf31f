// Package company maps a company name to a size class and industry using
// static lookup tables, and exposes the per-size hiring focus templates.
package company

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// defaultIndustry is used when no industry lookup matches.
const defaultIndustry = "Technology Services"

// Classifier performs case-insensitive, bidirectional substring matching
// against its table. Enterprise is always checked before Mid-size; anything
// unmatched is a Startup.
type Classifier struct {
	table Table
}

// NewClassifier builds a Classifier over an injected table.
func NewClassifier(table Table) *Classifier {
	return &Classifier{table: table}
}

// NewDefaultClassifier builds a Classifier over the built-in table.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultTable())
}

// Classify resolves a company name to a profile. A blank name yields the
// Unknown/Startup default.
func (c *Classifier) Classify(name string) types.CompanyProfile {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return types.CompanyProfile{
			Name:      "Unknown",
			Size:      types.SizeStartup,
			SizeLabel: types.SizeStartup.Label(),
			Industry:  defaultIndustry,
		}
	}

	normalized := strings.ToLower(trimmed)

	if matchesAny(normalized, c.table.Enterprise) {
		return profile(trimmed, types.SizeEnterprise, c.findIndustry(normalized))
	}
	if matchesAny(normalized, c.table.Midsize) {
		return profile(trimmed, types.SizeMidsize, c.findIndustry(normalized))
	}
	return profile(trimmed, types.SizeStartup, defaultIndustry)
}

// HiringFocus returns the static hiring-focus template for a size class.
// There are exactly three variants; the content is input-independent.
func (c *Classifier) HiringFocus(size types.SizeClass) types.HiringFocus {
	switch size {
	case types.SizeEnterprise:
		return types.HiringFocus{
			Title: "Structured DSA + Core Fundamentals",
			Points: []string{
				"Heavy emphasis on Data Structures & Algorithms",
				"Core CS fundamentals tested (OS, DBMS, Networks)",
				"Multiple structured interview rounds with clear rubrics",
				"Emphasis on problem-solving under time pressure",
				"Behavioral rounds with STAR method expected",
			},
		}
	case types.SizeMidsize:
		return types.HiringFocus{
			Title: "Balanced Technical + Practical Skills",
			Points: []string{
				"Mix of DSA and practical coding challenges",
				"System design discussions for mid-senior roles",
				"Project-based deep dives are common",
				"Culture fit assessment alongside technical skills",
				"Focus on ownership and initiative mindset",
			},
		}
	default:
		return types.HiringFocus{
			Title: "Practical Problem Solving + Stack Depth",
			Points: []string{
				"Focus on real-world problem solving over theory",
				"Deep knowledge of your tech stack is critical",
				"Take-home assignments or live pair programming common",
				"Strong bias towards shipping velocity and adaptability",
				"Culture and team fit weighed heavily",
			},
		}
	}
}

// findIndustry resolves the industry by ordered bidirectional lookup.
func (c *Classifier) findIndustry(normalized string) string {
	for _, entry := range c.table.Industries {
		if contains(normalized, strings.ToLower(entry.Name)) {
			return entry.Industry
		}
	}
	return defaultIndustry
}

func profile(name string, size types.SizeClass, industry string) types.CompanyProfile {
	return types.CompanyProfile{
		Name:      name,
		Size:      size,
		SizeLabel: size.Label(),
		Industry:  industry,
	}
}

// contains reports bidirectional substring containment. This tolerates both
// partial input ("goog") and extended input ("Google India Pvt Ltd").
func contains(input, known string) bool {
	return strings.Contains(input, known) || strings.Contains(known, input)
}

func matchesAny(normalized string, names []string) bool {
	for _, known := range names {
		if contains(normalized, strings.ToLower(known)) {
			return true
		}
	}
	return false
}
