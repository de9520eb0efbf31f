package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func assertTenUnique(t *testing.T, questions []string) {
	t.Helper()
	require.Len(t, questions, 10)
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q], "duplicate question: %q", q)
		seen[q] = true
	}
}

func TestGenerateQuestionsEmptySkillsUsesUniversalBank(t *testing.T) {
	var empty types.SkillSet

	questions := GenerateQuestions(empty)
	assertTenUnique(t, questions)
	assert.Equal(t, universalQuestions(), questions)
}

func TestGenerateQuestionsSkillTriggeredComeFirst(t *testing.T) {
	var skills types.SkillSet
	skills.Add(types.CategoryData, "SQL")
	skills.Add(types.CategoryWeb, "React")

	questions := GenerateQuestions(skills)
	assertTenUnique(t, questions)

	// Priority order is the rule list order, not extraction order.
	assert.Contains(t, questions[0], "indexing")
	assert.Contains(t, questions[1], "useState")
}

func TestGenerateQuestionsTruncatesAtTen(t *testing.T) {
	var skills types.SkillSet
	for _, s := range []string{"DSA", "OOP", "DBMS", "OS", "Networks"} {
		skills.Add(types.CategoryCoreCS, s)
	}
	for _, s := range []string{"Java", "Python", "JavaScript", "TypeScript", "C++", "Go"} {
		skills.Add(types.CategoryLanguages, s)
	}
	for _, s := range []string{"React", "Node.js", "Express", "REST", "GraphQL", "Next.js"} {
		skills.Add(types.CategoryWeb, s)
	}

	questions := GenerateQuestions(skills)
	assertTenUnique(t, questions)

	// More than ten rules fire; nothing universal should remain.
	for _, q := range questions {
		assert.NotContains(t, universalQuestions(), q)
	}
}

func TestGenerateQuestionsPadsWithUniversal(t *testing.T) {
	var skills types.SkillSet
	skills.Add(types.CategoryCloud, "Docker")
	skills.Add(types.CategoryCloud, "Kubernetes")

	questions := GenerateQuestions(skills)
	assertTenUnique(t, questions)

	assert.Contains(t, questions[0], "Docker image")
	assert.Contains(t, questions[1], "Kubernetes pod")
	// The remaining eight come from the universal list in order.
	assert.Equal(t, universalQuestions()[:8], questions[2:])
}

func TestGenerateQuestionsFallbackSkillsGetUniversalBank(t *testing.T) {
	var fallback types.SkillSet
	for _, s := range []string{"Communication", "Problem solving", "Basic coding", "Projects"} {
		fallback.Add(types.CategoryOther, s)
	}

	// No rule matches the generic bucket, so the bank is purely universal.
	assert.Equal(t, universalQuestions(), GenerateQuestions(fallback))
}

func TestSkillQuestionRulesAreUniquePerSkill(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range skillQuestions() {
		assert.False(t, seen[rule.skill], "duplicate rule for skill %q", rule.skill)
		seen[rule.skill] = true
		assert.NotEmpty(t, rule.question)
	}
}
