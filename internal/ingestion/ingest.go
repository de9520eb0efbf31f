// Package ingestion acquires job-description text from a file or URL and
// normalizes it before analysis.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/placement-readiness/internal/fetch"
)

// Metadata describes where a job description came from.
type Metadata struct {
	Source      string    `json:"source"`
	Kind        string    `json:"kind"` // "file" or "url"
	Chars       int       `json:"chars"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes line endings and whitespace while preserving line
// structure.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			blanks++
			// At most one consecutive blank line survives.
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// FromFile reads and cleans a job description from a text file.
func FromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job description %s: %w", path, err)
	}

	text := CleanText(string(data))
	return text, &Metadata{
		Source:      path,
		Kind:        "file",
		Chars:       len(text),
		RetrievedAt: time.Now().UTC(),
	}, nil
}

// FromURL fetches a job posting page, extracts its text, and cleans it.
// When useBrowser is set and the plain fetch yields too little content, the
// page is re-rendered in a headless browser.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, err
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	text, err := fetch.ExtractJobText(result.HTML)
	if err != nil {
		return "", nil, err
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] Extracted only %d chars; falling back to browser rendering", len(text))
		}
		html, err := fetch.WithBrowser(ctx, urlStr, fetch.DefaultTimeout, verbose)
		if err != nil {
			return "", nil, err
		}
		text, err = fetch.ExtractJobText(html)
		if err != nil {
			return "", nil, err
		}
	}

	text = CleanText(text)
	return text, &Metadata{
		Source:      urlStr,
		Kind:        "url",
		Chars:       len(text),
		RetrievedAt: time.Now().UTC(),
	}, nil
}
