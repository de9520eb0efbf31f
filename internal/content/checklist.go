// Package content generates the templated preparation artifacts — the
// round-wise checklist, the 7-day plan, and the likely-question bank — from
// an extracted skill set. All generators are pure; conditional augmentation
// is expressed as rule lists evaluated in a fixed order.
package content

import (
	"fmt"

	"github.com/jonathan/placement-readiness/internal/types"
)

// checklistRule appends extra items to a section when its predicate holds.
type checklistRule struct {
	when  func(types.SkillSet) bool
	items func(types.SkillSet) []string
}

// checklistSection is a section template: fixed base items, ordered
// conditional rules, then fixed tail items.
type checklistSection struct {
	title string
	base  []string
	rules []checklistRule
	tail  []string
}

func hasCategory(c types.Category) func(types.SkillSet) bool {
	return func(s types.SkillSet) bool { return s.HasCategory(c) }
}

func hasSkill(name string) func(types.SkillSet) bool {
	return func(s types.SkillSet) bool { return s.Has(name) }
}

func fixed(items ...string) func(types.SkillSet) []string {
	return func(types.SkillSet) []string { return items }
}

// checklistTemplate is the four-round checklist in its documented rule order.
func checklistTemplate() []checklistSection {
	return []checklistSection{
		{
			title: "Aptitude & Fundamentals",
			base: []string{
				"Practice quantitative aptitude (percentages, ratios, time & work)",
				"Solve 20 logical reasoning puzzles",
				"Review basic verbal ability and reading comprehension",
				"Time yourself — target 1 min per aptitude question",
				"Practice number series and pattern recognition",
			},
			rules: []checklistRule{
				{when: hasCategory(types.CategoryCoreCS), items: fixed(
					"Revise OS basics: process scheduling, deadlocks, memory management",
					"Review DBMS: normalization, ACID properties, joins",
					"Brush up on networking: OSI model, TCP/UDP, HTTP methods",
				)},
			},
		},
		{
			title: "DSA & Core CS",
			base: []string{
				"Solve 5 easy array/string problems daily",
				"Master sorting algorithms: quicksort, mergesort, heapsort",
				"Practice recursion and backtracking patterns",
				"Understand time & space complexity analysis (Big-O)",
				"Solve 3 medium-level linked list / tree problems",
			},
			rules: []checklistRule{
				{when: hasSkill("DSA"), items: fixed(
					"Practice dynamic programming: knapsack, LCS, LIS patterns",
					"Review graph algorithms: BFS, DFS, Dijkstra, topological sort",
					"Solve 2 hard problems per week on competitive platforms",
				)},
				{when: hasCategory(types.CategoryData), items: fixed(
					"Practice SQL queries: joins, subqueries, window functions",
				)},
			},
		},
		{
			title: "Technical Interview (Projects & Stack)",
			base: []string{
				"Prepare 2-minute pitch for each project on your resume",
				"Know your tech stack deeply — expect \"why did you choose X?\"",
				"Be ready to whiteboard a system design for a feature you built",
			},
			rules: []checklistRule{
				{when: hasCategory(types.CategoryWeb), items: webDeepDiveItems},
				{when: hasCategory(types.CategoryCloud), items: fixed(
					"Explain your CI/CD pipeline and deployment workflow",
					"Discuss containerization choices (Docker) and orchestration basics",
				)},
				{when: hasCategory(types.CategoryTesting), items: fixed(
					"Describe your testing strategy: unit, integration, E2E",
				)},
			},
			tail: []string{
				"Practice live coding with someone watching — simulate pressure",
				"Prepare to discuss trade-offs in architectural decisions",
			},
		},
		{
			title: "Managerial / HR",
			base: []string{
				"Prepare a strong \"Tell me about yourself\" (90 seconds max)",
				"Practice STAR method for behavioral questions",
				"Research the company: products, culture, recent news",
				"Prepare 3 thoughtful questions to ask the interviewer",
				"Practice \"Why this company?\" and \"Why should we hire you?\"",
				"Review your resume for any gaps or inconsistencies",
				"Be ready to discuss salary expectations professionally",
				"Practice handling stress questions and curveballs",
			},
		},
	}
}

// webDeepDiveItems swaps in framework-specific wording when the matching
// skills were extracted.
func webDeepDiveItems(s types.SkillSet) []string {
	frontend := "frontend framework internals"
	if s.Has("React") {
		frontend = "React lifecycle, hooks, and state management"
	}
	backend := "backend API design and REST conventions"
	if s.Has("Node.js") {
		backend = "Node.js event loop, middleware, and async patterns"
	}
	return []string{
		fmt.Sprintf("Deep dive into %s", frontend),
		fmt.Sprintf("Understand %s", backend),
	}
}

// GenerateChecklist builds the four-section preparation checklist. Section
// titles carry a "Round N:" prefix derived from position.
func GenerateChecklist(skills types.SkillSet) []types.ChecklistSection {
	template := checklistTemplate()
	sections := make([]types.ChecklistSection, len(template))
	for i, sec := range template {
		items := append([]string{}, sec.base...)
		for _, rule := range sec.rules {
			if rule.when(skills) {
				items = append(items, rule.items(skills)...)
			}
		}
		items = append(items, sec.tail...)
		sections[i] = types.ChecklistSection{
			RoundTitle: fmt.Sprintf("Round %d: %s", i+1, sec.title),
			Items:      items,
		}
	}
	return sections
}
