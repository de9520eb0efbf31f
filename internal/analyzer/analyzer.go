// Package analyzer composes extraction, classification, round mapping,
// content generation, and scoring into one immutable analysis record.
package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/company"
	"github.com/jonathan/placement-readiness/internal/content"
	"github.com/jonathan/placement-readiness/internal/extraction"
	"github.com/jonathan/placement-readiness/internal/rounds"
	"github.com/jonathan/placement-readiness/internal/scoring"
	"github.com/jonathan/placement-readiness/internal/types"
)

// ShortJDThreshold is the JD length below which a soft warning is surfaced.
// The analysis still runs; the warning is advisory only.
const ShortJDThreshold = 200

// ValidationError indicates input that blocks analysis entirely.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Analyzer wires the pipeline components. Classifier and extractor carry
// injected tables so the logic is testable independently of the data.
type Analyzer struct {
	extractor  *extraction.Extractor
	classifier *company.Classifier
	engine     *rounds.Engine
}

// New builds an Analyzer from explicit components.
func New(extractor *extraction.Extractor, classifier *company.Classifier) *Analyzer {
	return &Analyzer{
		extractor:  extractor,
		classifier: classifier,
		engine:     rounds.NewEngine(),
	}
}

// NewDefault builds an Analyzer over the built-in keyword and company tables.
func NewDefault() *Analyzer {
	return New(extraction.NewDefaultExtractor(), company.NewDefaultClassifier())
}

// ShortJDWarning returns an advisory message when the JD is present but
// under the comfortable length. The second return is false when no warning
// applies.
func ShortJDWarning(jdText string) (string, bool) {
	n := len(jdText)
	if n == 0 || n >= ShortJDThreshold {
		return "", false
	}
	return fmt.Sprintf("Job description is only %d characters; results improve with at least %d. Consider pasting the full posting.", n, ShortJDThreshold), true
}

// Analyze runs the full pipeline for one request. It either fully succeeds
// or returns a ValidationError before anything is produced; records are
// never partially constructed. Persistence is the caller's responsibility.
func (a *Analyzer) Analyze(req types.AnalyzeRequest) (*types.AnalysisRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "jd_text", Message: "job description is required"}
	}
	if strings.TrimSpace(req.JDText) == "" {
		return nil, &ValidationError{Field: "jd_text", Message: "job description is empty"}
	}

	skills := a.extractor.Extract(req.JDText)
	if skills.IsEmpty() {
		// Fallback bucket stands in for extracted evidence downstream.
		skills = extraction.FallbackSkillSet()
	}

	profile := a.classifier.Classify(req.Company)
	now := time.Now().UTC()
	baseScore := scoring.BaseScore(skills, req.Company, req.Role, req.JDText)

	record := &types.AnalysisRecord{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,

		Company: strings.TrimSpace(req.Company),
		Role:    strings.TrimSpace(req.Role),
		JDText:  req.JDText,

		Skills:      skills,
		Profile:     profile,
		HiringFocus: a.classifier.HiringFocus(profile.Size),
		Rounds:      a.engine.MapRounds(profile, skills),
		Checklist:   content.GenerateChecklist(skills),
		Plan:        content.GeneratePlan(skills),
		Questions:   content.GenerateQuestions(skills),

		BaseScore:       baseScore,
		SkillConfidence: map[string]types.Confidence{},
		FinalScore:      baseScore,
	}

	return record, nil
}
