package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/careerforge/cover-letter-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchInputJSON(t *testing.T, resume model.ResumeRecord, job model.JobRecord) json.RawMessage {
	t.Helper()
	resumeRaw, err := json.Marshal(resume)
	require.NoError(t, err)
	jobRaw, err := json.Marshal(job)
	require.NoError(t, err)
	raw, err := json.Marshal(MatchInput{ResumeData: resumeRaw, JobData: jobRaw})
	require.NoError(t, err)
	return raw
}

func TestMatchingSkills(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		required []string
		want     []string
	}{
		{
			name:     "case-insensitive substring match",
			skills:   []string{"Python programming", "SQL", "Docker"},
			required: []string{"python", "sql"},
			want:     []string{"Python programming", "SQL"},
		},
		{
			name:     "capped at limit",
			skills:   []string{"Go", "Going fast", "Golang", "Go tooling"},
			required: []string{"go"},
			want:     []string{"Go", "Going fast", "Golang"},
		},
		{
			name:     "no overlap",
			skills:   []string{"Painting"},
			required: []string{"Kubernetes"},
			want:     []string{},
		},
		{
			name:     "empty required skill never matches",
			skills:   []string{"Anything"},
			required: []string{""},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchingSkills(tt.skills, tt.required, 3))
		})
	}
}

func TestSellingPointsToolExecute(t *testing.T) {
	tool := NewSellingPointsTool()
	input := matchInputJSON(t,
		model.ResumeRecord{Skills: []string{"Python", "SQL", "Excel"}},
		model.JobRecord{RequiredSkills: []string{"Python", "SQL"}},
	)

	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Key selling points: Python, SQL", out)
}

func TestSellingPointsToolInvalidInput(t *testing.T) {
	tool := NewSellingPointsTool()
	_, err := tool.Execute(context.Background(), json.RawMessage(`{"resume_data": "nope"`))
	assert.Error(t, err)
}

func TestMatchAnalysisToolExecute(t *testing.T) {
	tool := NewMatchAnalysisTool()
	input := matchInputJSON(t,
		model.ResumeRecord{Skills: []string{"Go", "Postgres", "Docker"}},
		model.JobRecord{RequiredSkills: []string{"Go"}},
	)

	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Resume match analysis: 3 skills align with job requirements", out)
}

func TestRegistryDefinitions(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewMatchAnalysisTool())
	reg.Register(NewSellingPointsTool())

	assert.Len(t, reg.List(), 2)

	_, ok := reg.Get("analyze_resume_match")
	assert.True(t, ok)
	_, ok = reg.Get("unknown_tool")
	assert.False(t, ok)

	defs := reg.Definitions()
	require.Len(t, defs, 2)
	for _, def := range defs {
		assert.Equal(t, "function", def["type"])
		fn, ok := def["function"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, fn["name"])
		assert.NotEmpty(t, fn["description"])
		assert.NotNil(t, fn["parameters"])
	}
}
