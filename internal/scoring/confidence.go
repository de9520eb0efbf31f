package scoring

import (
	"time"

	"github.com/jonathan/placement-readiness/internal/types"
)

// confidenceStep is the score adjustment each extracted skill contributes:
// positive when marked "know", negative when "practice".
const confidenceStep = 2

// FinalScore fully re-derives the confidence-adjusted score from the base
// score and the complete confidence map. Every extracted skill contributes,
// including skills never toggled (default practice). The score is never
// adjusted incrementally, which keeps repeated toggles drift-free.
func FinalScore(baseScore int, skills types.SkillSet, confidence map[string]types.Confidence) int {
	adjustment := 0
	for _, skill := range skills.All() {
		if confidence[skill] == types.ConfidenceKnow {
			adjustment += confidenceStep
		} else {
			adjustment -= confidenceStep
		}
	}
	return clamp(baseScore + adjustment)
}

// ToggleConfidence flips one skill between practice (the default) and know,
// recomputes the final score from scratch, and stamps UpdatedAt. The input
// record is not mutated; base score, skills, and all generated content carry
// over unchanged.
func ToggleConfidence(record types.AnalysisRecord, skill string) types.AnalysisRecord {
	updated := make(map[string]types.Confidence, len(record.SkillConfidence)+1)
	for k, v := range record.SkillConfidence {
		updated[k] = v
	}

	if record.ConfidenceFor(skill) == types.ConfidencePractice {
		updated[skill] = types.ConfidenceKnow
	} else {
		updated[skill] = types.ConfidencePractice
	}

	record.SkillConfidence = updated
	record.FinalScore = FinalScore(record.BaseScore, record.Skills, updated)
	record.UpdatedAt = time.Now().UTC()
	return record
}
