package content

import (
	"github.com/jonathan/placement-readiness/internal/types"
)

// planTask is one task slot in a study day. When the predicate is nil the
// text always appears. Otherwise the text appears when the predicate holds;
// if it fails, alt is substituted when non-empty and the slot is dropped
// when alt is empty.
type planTask struct {
	when func(types.SkillSet) bool
	text string
	alt  string
}

// planDay is one entry of the 7-day plan template.
type planDay struct {
	day   string
	focus string
	tasks []planTask
}

// planTemplate is the fixed 5-entry plan spanning 7 days, with conditional
// task substitution keyed on extracted skills.
func planTemplate() []planDay {
	return []planDay{
		{
			day:   "Day 1–2",
			focus: "Fundamentals & Core CS",
			tasks: []planTask{
				{text: "Revise OOP concepts: inheritance, polymorphism, encapsulation, abstraction"},
				{text: "Review OS: process vs thread, scheduling algorithms, virtual memory"},
				{text: "DBMS: normalization (1NF–BCNF), transactions, indexing"},
				{
					when: hasCategory(types.CategoryData),
					text: "Practice SQL: write 10 queries covering joins, aggregates, subqueries",
					alt:  "Review data modeling basics",
				},
				{text: "Computer Networks: OSI layers, TCP handshake, DNS resolution"},
			},
		},
		{
			day:   "Day 3–4",
			focus: "DSA & Coding Practice",
			tasks: []planTask{
				{text: "Arrays & Strings: sliding window, two pointers, prefix sums"},
				{text: "Linked Lists: reversal, cycle detection, merge sorted lists"},
				{text: "Trees & BSTs: traversals, LCA, diameter, balanced check"},
				{
					when: hasSkill("DSA"),
					text: "Dynamic Programming: 0/1 knapsack, coin change, longest subsequence",
					alt:  "Practice 10 easy-medium problems on any coding platform",
				},
				{text: "Graphs: BFS, DFS, connected components, shortest path"},
				{text: "Time yourself: aim for 20–30 min per medium problem"},
			},
		},
		{
			day:   "Day 5",
			focus: "Projects & Resume Alignment",
			tasks: []planTask{
				{text: "Update resume: quantify achievements (\"reduced load time by 40%\")"},
				{text: "Prepare a 2-minute walkthrough for each project"},
				{when: hasSkill("React"), text: "Review React concepts: hooks, context API, component lifecycle"},
				{when: hasSkill("Node.js"), text: "Review Node.js: event loop, streams, middleware pattern"},
				{when: hasCategory(types.CategoryCloud), text: "Document your deployment pipeline and cloud architecture"},
				{text: "Identify 2 technical challenges you faced and how you solved them"},
				{text: "Ensure GitHub repos are clean, documented, and have README files"},
			},
		},
		{
			day:   "Day 6",
			focus: "Mock Interview & Questions",
			tasks: []planTask{
				{text: "Do a 45-minute mock interview with a peer or record yourself"},
				{text: "Practice \"Tell me about yourself\" — keep it under 90 seconds"},
				{text: "Prepare STAR stories for: teamwork, conflict, failure, leadership"},
				{when: hasSkill("SQL"), text: "Practice explaining database design decisions verbally"},
				{when: hasSkill("React"), text: "Explain React state management options: useState, Redux, Context"},
				{when: hasCategory(types.CategoryCloud), text: "Walk through a deployment scenario end-to-end"},
				{text: "Practice system design: design a URL shortener or chat app"},
				{text: "Review the 10 likely interview questions from your analysis"},
			},
		},
		{
			day:   "Day 7",
			focus: "Revision & Weak Areas",
			tasks: []planTask{
				{text: "Re-solve problems you got wrong during the week"},
				{text: "Review all core concepts one final time (flashcard method)"},
				{text: "Rehearse your project pitches out loud"},
				{text: "Check all your proof links and portfolio for broken links"},
				{text: "Prepare your interview-day logistics: timing, tools, ID, etc."},
				{text: "Get proper rest — a clear mind outperforms cramming"},
			},
		},
	}
}

// GeneratePlan builds the 7-day study plan (exactly 5 entries). Unmet
// conditional slots without an alternative are filtered out, never emitted
// as empty tasks.
func GeneratePlan(skills types.SkillSet) []types.DayPlanEntry {
	template := planTemplate()
	plan := make([]types.DayPlanEntry, len(template))
	for i, day := range template {
		var tasks []string
		for _, task := range day.tasks {
			switch {
			case task.when == nil || task.when(skills):
				tasks = append(tasks, task.text)
			case task.alt != "":
				tasks = append(tasks, task.alt)
			}
		}
		plan[i] = types.DayPlanEntry{Day: day.day, Focus: day.focus, Tasks: tasks}
	}
	return plan
}
