// Package scoring computes the deterministic readiness score and the
// confidence-adjusted final score.
package scoring

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// Score model constants. All bonuses commute, so the base score is
// order-independent by construction.
const (
	baselineScore    = 35
	perCategoryBonus = 5
	categoryBonusCap = 30
	companyBonus     = 10
	roleBonus        = 10
	longJDBonus      = 10

	// longJDThreshold is the JD length above which the detail bonus applies.
	longJDThreshold = 800

	minScore = 0
	maxScore = 100
)

// BaseScore computes the immutable readiness base score from the extracted
// skills and the raw inputs. Pure: no randomness, no external state.
func BaseScore(skills types.SkillSet, companyName, role, jdText string) int {
	score := baselineScore

	categoryBonus := skills.CategoryCount() * perCategoryBonus
	if categoryBonus > categoryBonusCap {
		categoryBonus = categoryBonusCap
	}
	score += categoryBonus

	if strings.TrimSpace(companyName) != "" {
		score += companyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += roleBonus
	}
	if len(jdText) > longJDThreshold {
		score += longJDBonus
	}

	return clamp(score)
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
