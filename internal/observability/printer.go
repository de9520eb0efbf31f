// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", fitLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fitLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fitLine pads or truncates a line to the box's inner width. Width is
// measured in runes, not bytes, so size labels and dashes keep the right
// edge aligned and truncation never splits a character.
func fitLine(line string) string {
	inner := boxWidth - 4
	runes := []rune(line)
	if len(runes) > inner {
		return string(runes[:inner-3]) + "..."
	}
	return line + strings.Repeat(" ", inner-len(runes))
}

// PrintSummary outputs a human-readable overview of one analysis record.
func (p *Printer) PrintSummary(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s (%s, %s)\n", record.Profile.Name, record.Profile.SizeLabel, record.Profile.Industry))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(record.Role)))
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (base %d)\n", record.FinalScore, record.BaseScore))
	sb.WriteString(fmt.Sprintf("Rounds:   %d predicted\n", len(record.Rounds)))
	sb.WriteString(fmt.Sprintf("ID:       %s", record.ID))

	p.printBox("Readiness Analysis", sb.String())
}

// PrintSkills outputs the extracted skill set grouped by category.
func (p *Printer) PrintSkills(skills types.SkillSet) {
	var sb strings.Builder
	for _, category := range types.Categories() {
		list := skills.Get(category)
		if len(list) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-13s %s\n", string(category)+":", strings.Join(list, ", ")))
	}
	content := strings.TrimRight(sb.String(), "\n")
	if content == "" {
		content = "(none)"
	}
	p.printBox("Extracted Skills", content)
}

// PrintRounds outputs the predicted round mapping with focus areas.
func (p *Printer) PrintRounds(rounds []types.InterviewRound) {
	var sb strings.Builder
	for i, round := range rounds {
		sb.WriteString(round.Title + "\n")
		if len(round.FocusAreas) > 0 {
			focus := round.FocusAreas
			if len(focus) > maxItemsToShow {
				focus = focus[:maxItemsToShow]
			}
			sb.WriteString("  focus: " + strings.Join(focus, ", ") + "\n")
		}
		if i < len(rounds)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("Round Mapping", strings.TrimRight(sb.String(), "\n"))
}

// PrintQuestions outputs the likely-question bank.
func (p *Printer) PrintQuestions(questions []string) {
	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, q))
	}
	p.printBox("Likely Interview Questions", strings.TrimRight(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
