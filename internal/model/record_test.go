package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackResumeRecord(t *testing.T) {
	record := FallbackResumeRecord()

	assert.Equal(t, "Unknown", record.Name)
	assert.Equal(t, "unknown@email.com", record.Email)
	assert.Equal(t, []string{"Various skills"}, record.Skills)
	require.Len(t, record.Experience, 1)
	require.Len(t, record.Education, 1)
	assert.NotNil(t, record.Certifications)
	assert.NotNil(t, record.Achievements)

	// The fallback must round-trip so downstream marshalling never chokes.
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	var back ResumeRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *record, back)
}

func TestFallbackJobRecord(t *testing.T) {
	record := FallbackJobRecord()

	assert.Equal(t, "Target Company", record.CompanyName)
	assert.Equal(t, "Position", record.JobTitle)
	assert.Equal(t, "Full-time", record.EmploymentType)
	assert.NotEmpty(t, record.RequiredSkills)
	assert.NotEmpty(t, record.KeyResponsibilities)
}
