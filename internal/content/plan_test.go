package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func TestGeneratePlanAlwaysHasFiveEntries(t *testing.T) {
	var empty types.SkillSet

	plan := GeneratePlan(empty)
	require.Len(t, plan, 5)

	assert.Equal(t, "Day 1–2", plan[0].Day)
	assert.Equal(t, "Day 3–4", plan[1].Day)
	assert.Equal(t, "Day 5", plan[2].Day)
	assert.Equal(t, "Day 6", plan[3].Day)
	assert.Equal(t, "Day 7", plan[4].Day)

	for _, day := range plan {
		assert.NotEmpty(t, day.Focus)
		assert.NotEmpty(t, day.Tasks)
	}
}

func TestGeneratePlanAlternativeSubstitution(t *testing.T) {
	var noData types.SkillSet
	plan := GeneratePlan(noData)
	assert.Contains(t, plan[0].Tasks, "Review data modeling basics")
	assert.NotContains(t, plan[0].Tasks, "Practice SQL: write 10 queries covering joins, aggregates, subqueries")

	var withData types.SkillSet
	withData.Add(types.CategoryData, "SQL")
	plan = GeneratePlan(withData)
	assert.Contains(t, plan[0].Tasks, "Practice SQL: write 10 queries covering joins, aggregates, subqueries")
	assert.NotContains(t, plan[0].Tasks, "Review data modeling basics")
}

func TestGeneratePlanDropsUnmetSlotsWithoutAlternative(t *testing.T) {
	var empty types.SkillSet
	plan := GeneratePlan(empty)

	// Day 5 React/Node/Cloud slots vanish entirely without matching skills.
	assert.NotContains(t, plan[2].Tasks, "Review React concepts: hooks, context API, component lifecycle")
	assert.NotContains(t, plan[2].Tasks, "Review Node.js: event loop, streams, middleware pattern")
	assert.NotContains(t, plan[2].Tasks, "Document your deployment pipeline and cloud architecture")
	assert.Len(t, plan[2].Tasks, 4)
}

func TestGeneratePlanSkillConditionedTasks(t *testing.T) {
	var skills types.SkillSet
	skills.Add(types.CategoryCoreCS, "DSA")
	skills.Add(types.CategoryWeb, "React")
	skills.Add(types.CategoryCloud, "AWS")

	plan := GeneratePlan(skills)

	assert.Contains(t, plan[1].Tasks, "Dynamic Programming: 0/1 knapsack, coin change, longest subsequence")
	assert.Contains(t, plan[2].Tasks, "Review React concepts: hooks, context API, component lifecycle")
	assert.Contains(t, plan[3].Tasks, "Explain React state management options: useState, Redux, Context")
	assert.Contains(t, plan[3].Tasks, "Walk through a deployment scenario end-to-end")
}

func TestGeneratePlanDeterministic(t *testing.T) {
	var skills types.SkillSet
	skills.Add(types.CategoryData, "SQL")
	skills.Add(types.CategoryWeb, "Node.js")

	first := GeneratePlan(skills)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GeneratePlan(skills))
	}
}
