package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceForDefaultsToPractice(t *testing.T) {
	record := AnalysisRecord{SkillConfidence: map[string]Confidence{
		"React": ConfidenceKnow,
	}}

	assert.Equal(t, ConfidenceKnow, record.ConfidenceFor("React"))
	assert.Equal(t, ConfidencePractice, record.ConfidenceFor("SQL"))
}

func TestConfidenceForNilMap(t *testing.T) {
	var record AnalysisRecord
	assert.Equal(t, ConfidencePractice, record.ConfidenceFor("anything"))
}

func TestAnalyzeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  AnalyzeRequest{Company: "Google", Role: "SDE", JDText: "some description"},
		},
		{
			name: "jd text only is valid",
			req:  AnalyzeRequest{JDText: "some description"},
		},
		{
			name:    "missing jd text",
			req:     AnalyzeRequest{Company: "Google"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
