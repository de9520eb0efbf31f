package observability

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func sampleRecord() *types.AnalysisRecord {
	var skills types.SkillSet
	skills.Add(types.CategoryWeb, "React")
	skills.Add(types.CategoryData, "SQL")

	return &types.AnalysisRecord{
		ID:         uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Role:       "Backend Engineer",
		Skills:     skills,
		BaseScore:  60,
		FinalScore: 56,
		Profile: types.CompanyProfile{
			Name:      "Zoho",
			Size:      types.SizeMidsize,
			SizeLabel: types.SizeMidsize.Label(),
			Industry:  "SaaS",
		},
		Rounds: []types.InterviewRound{
			{Title: "Round 1: Coding Challenge", FocusAreas: []string{"DSA", "Clean Code"}},
			{Title: "Round 2: Technical Deep Dive"},
		},
		Questions: []string{"What is a goroutine?", "Explain database indexing."},
	}
}

func TestPrintSummary(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintSummary(sampleRecord())
	out := buf.String()

	assert.Contains(t, out, "Readiness Analysis")
	assert.Contains(t, out, "Zoho")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "56/100")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintSummaryNilRecordIsSilent(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintSkills(sampleRecord().Skills)
	out := buf.String()

	assert.Contains(t, out, "Extracted Skills")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "SQL")
	assert.NotContains(t, out, string(types.CategoryCoreCS)+":")
}

func TestPrintSkillsEmptySet(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintSkills(types.SkillSet{})
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintRounds(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRounds(sampleRecord().Rounds)
	out := buf.String()

	assert.Contains(t, out, "Round Mapping")
	assert.Contains(t, out, "Round 1: Coding Challenge")
	assert.Contains(t, out, "DSA, Clean Code")
}

func TestPrintBoxAlignsMultiByteContent(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	// Size labels and the role dash carry multi-byte runes; every box line
	// must still end on the same column.
	record := sampleRecord()
	record.Role = ""
	p.PrintSummary(record)

	var widths []int
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		widths = append(widths, utf8.RuneCountInString(line))
	}
	require.NotEmpty(t, widths)
	for i, w := range widths {
		assert.Equal(t, widths[0], w, "line %d has width %d, want %d", i, w, widths[0])
	}
}

func TestPrintBoxTruncatesOnRuneBoundaries(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	long := strings.Repeat("–", 80)
	p.PrintQuestions([]string{long})

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, utf8.RuneCountInString("┌"+strings.Repeat("─", 58)+"┐"), utf8.RuneCountInString(line))
	}
}

func TestPrintQuestionsNumbersEntries(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintQuestions(sampleRecord().Questions)
	out := buf.String()

	assert.Contains(t, out, "Likely Interview Questions")
	assert.Contains(t, out, "1. What is a goroutine?")
	assert.Contains(t, out, "2. Explain database indexing.")
}
