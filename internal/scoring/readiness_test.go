package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/placement-readiness/internal/types"
)

func skillsWithCategories(categories ...types.Category) types.SkillSet {
	var s types.SkillSet
	for _, c := range categories {
		s.Add(c, "X-"+string(c))
	}
	return s
}

func TestBaseScoreAllBonuses(t *testing.T) {
	skills := skillsWithCategories(
		types.CategoryCoreCS, types.CategoryLanguages,
		types.CategoryWeb, types.CategoryData,
	)
	longJD := strings.Repeat("a", 801)

	// 35 + 4*5 + 10 + 10 + 10
	assert.Equal(t, 85, BaseScore(skills, "Google", "SDE", longJD))
}

func TestBaseScoreBaselineOnly(t *testing.T) {
	var fallback types.SkillSet
	fallback.Add(types.CategoryOther, "Communication")

	// Other never counts; blank company/role and short JD add nothing.
	assert.Equal(t, 35, BaseScore(fallback, "", "", "short jd"))
}

func TestBaseScoreCategoryBonusIsCapped(t *testing.T) {
	all := skillsWithCategories(
		types.CategoryCoreCS, types.CategoryLanguages, types.CategoryWeb,
		types.CategoryData, types.CategoryCloud, types.CategoryTesting,
	)

	// Six categories would be 30 uncapped; the cap keeps it at 30.
	assert.Equal(t, 35+30, BaseScore(all, "", "", ""))
}

func TestBaseScoreWhitespaceCompanyAndRoleEarnNoBonus(t *testing.T) {
	skills := skillsWithCategories(types.CategoryWeb)

	assert.Equal(t, 40, BaseScore(skills, "   ", "\t", ""))
}

func TestBaseScoreLongJDThresholdIsStrict(t *testing.T) {
	var s types.SkillSet

	exactly := strings.Repeat("a", 800)
	over := strings.Repeat("a", 801)

	assert.Equal(t, 35, BaseScore(s, "", "", exactly))
	assert.Equal(t, 45, BaseScore(s, "", "", over))
}

func TestBaseScoreDeterministic(t *testing.T) {
	skills := skillsWithCategories(types.CategoryCoreCS, types.CategoryData)
	first := BaseScore(skills, "Zoho", "Backend Engineer", "some jd text")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BaseScore(skills, "Zoho", "Backend Engineer", "some jd text"))
	}
}
