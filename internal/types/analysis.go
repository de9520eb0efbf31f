package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RoundType categorizes an interview round.
type RoundType string

// Round types, ordered roughly from broadest filter to most qualitative.
const (
	RoundOnline    RoundType = "online"
	RoundTechnical RoundType = "technical"
	RoundProject   RoundType = "project"
	RoundHR        RoundType = "hr"
)

// InterviewRound is one predicted interview stage. Title carries the derived
// "Round N: ..." prefix where N matches the round's 1-based position.
type InterviewRound struct {
	Title       string    `json:"title"`
	Type        RoundType `json:"type"`
	Description string    `json:"description"`
	Rationale   string    `json:"rationale"`
	FocusAreas  []string  `json:"focus_areas"`
}

// ChecklistSection is the preparation checklist for one interview round.
type ChecklistSection struct {
	RoundTitle string   `json:"round_title"`
	Items      []string `json:"items"`
}

// DayPlanEntry is one slot of the 7-day study plan.
type DayPlanEntry struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Confidence is a per-skill self-assessment.
type Confidence string

// Confidence values. Any skill absent from the map is treated as practice.
const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// AnalysisRecord is the aggregate root produced by one analysis run. It is
// created whole; only the confidence map, final score, and UpdatedAt change
// afterwards. BaseScore is immutable once set.
type AnalysisRecord struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jd_text"`

	Skills      SkillSet           `json:"extracted_skills"`
	Profile     CompanyProfile     `json:"company_profile"`
	HiringFocus HiringFocus        `json:"hiring_focus"`
	Rounds      []InterviewRound   `json:"round_mapping"`
	Checklist   []ChecklistSection `json:"checklist"`
	Plan        []DayPlanEntry     `json:"plan_7_days"`
	Questions   []string           `json:"questions"`

	BaseScore       int                   `json:"base_score"`
	SkillConfidence map[string]Confidence `json:"skill_confidence_map"`
	FinalScore      int                   `json:"final_score"`
}

// ConfidenceFor returns the recorded confidence for a skill, defaulting to
// practice when absent.
func (r *AnalysisRecord) ConfidenceFor(skill string) Confidence {
	if c, ok := r.SkillConfidence[skill]; ok && c == ConfidenceKnow {
		return ConfidenceKnow
	}
	return ConfidencePractice
}

// AnalyzeRequest is the input to one analysis run. Company and Role are
// optional; JDText is required and must not be blank.
type AnalyzeRequest struct {
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
	JDText  string `json:"jd_text" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
