package rounds

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func profileOf(size types.SizeClass) types.CompanyProfile {
	return types.CompanyProfile{Name: "TestCo", Size: size, SizeLabel: size.Label()}
}

func assertNumbering(t *testing.T, rounds []types.InterviewRound) {
	t.Helper()
	for i, round := range rounds {
		prefix := fmt.Sprintf("Round %d: ", i+1)
		assert.True(t, strings.HasPrefix(round.Title, prefix),
			"round %d title %q should start with %q", i, round.Title, prefix)
	}
}

func TestEnterpriseRounds(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryCoreCS, "DSA")
	skills.Add(types.CategoryCoreCS, "OS")
	skills.Add(types.CategoryWeb, "React")
	skills.Add(types.CategoryWeb, "Node.js")

	rounds := engine.MapRounds(profileOf(types.SizeEnterprise), skills)
	require.Len(t, rounds, 4)
	assertNumbering(t, rounds)

	assert.Equal(t, "Round 1: Online Assessment", rounds[0].Title)
	assert.Equal(t, types.RoundOnline, rounds[0].Type)
	assert.Contains(t, rounds[0].Description, "DSA problems")

	assert.Contains(t, rounds[1].Description, "OS, DBMS, and Networks")
	assert.Contains(t, rounds[1].FocusAreas, "Networks")

	assert.Equal(t, types.RoundProject, rounds[2].Type)
	assert.Contains(t, rounds[2].FocusAreas, "React")
	assert.Contains(t, rounds[2].FocusAreas, "System Design")

	assert.Equal(t, types.RoundHR, rounds[3].Type)
}

func TestEnterpriseRoundsWithoutDSA(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryLanguages, "Java")

	rounds := engine.MapRounds(profileOf(types.SizeEnterprise), skills)
	require.Len(t, rounds, 4)

	assert.Contains(t, rounds[0].Description, "aptitude test")
	assert.Contains(t, rounds[1].Description, "fundamental coding challenges")
	assert.Equal(t, []string{"Projects", "Tech Stack", "Problem Solving"}, rounds[2].FocusAreas)
}

func TestMidsizeRoundsBase(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryCoreCS, "DSA")

	rounds := engine.MapRounds(profileOf(types.SizeMidsize), skills)
	require.Len(t, rounds, 3)
	assertNumbering(t, rounds)

	assert.Equal(t, "Round 1: Coding Challenge", rounds[0].Title)
	assert.Equal(t, "Round 2: Technical Deep Dive", rounds[1].Title)
	assert.Equal(t, "Round 3: Project & Culture Fit", rounds[2].Title)
}

func TestMidsizeRoundsSpliceDevOps(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryCloud, "Docker")
	skills.Add(types.CategoryCloud, "AWS")

	rounds := engine.MapRounds(profileOf(types.SizeMidsize), skills)
	require.Len(t, rounds, 4)
	assertNumbering(t, rounds)

	// The infrastructure round goes in before culture fit and renumbers it.
	assert.Equal(t, "Round 3: DevOps & Infrastructure", rounds[2].Title)
	assert.Equal(t, "Round 4: Project & Culture Fit", rounds[3].Title)
	assert.Equal(t, []string{"Docker", "AWS"}, rounds[2].FocusAreas)
}

func TestMidsizeRoundsSpliceOnTesting(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryTesting, "Cypress")

	rounds := engine.MapRounds(profileOf(types.SizeMidsize), skills)
	require.Len(t, rounds, 4)
	assert.Equal(t, []string{"Cypress"}, rounds[2].FocusAreas)
}

func TestStartupRounds(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryWeb, "React")
	skills.Add(types.CategoryLanguages, "TypeScript")

	rounds := engine.MapRounds(profileOf(types.SizeStartup), skills)
	require.Len(t, rounds, 3)
	assertNumbering(t, rounds)

	assert.Equal(t, "Round 1: Practical Coding", rounds[0].Title)
	assert.Equal(t, []string{"TypeScript", "React"}, rounds[0].FocusAreas)
	assert.Contains(t, rounds[1].FocusAreas, "State Management")
	assert.Equal(t, types.RoundHR, rounds[2].Type)
}

func TestStartupRoundsWithoutWeb(t *testing.T) {
	engine := NewEngine()

	var skills types.SkillSet
	skills.Add(types.CategoryLanguages, "Go")

	rounds := engine.MapRounds(profileOf(types.SizeStartup), skills)
	require.Len(t, rounds, 3)

	assert.Equal(t, []string{"Practical Coding", "Problem Solving", "Speed"}, rounds[0].FocusAreas)
	assert.Equal(t, []string{"System Design", "Trade-offs", "Scalability"}, rounds[1].FocusAreas)
}

func TestHasLikeIsCaseInsensitiveSubstring(t *testing.T) {
	var skills types.SkillSet
	skills.Add(types.CategoryTesting, "E2E Testing")

	assert.True(t, hasLike(skills, "testing"))
	assert.True(t, hasLike(skills, "E2E"))
	assert.False(t, hasLike(skills, "unit"))
}
