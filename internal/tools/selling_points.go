package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerforge/cover-letter-api/internal/model"
)

// SellingPointsTool picks the candidate skills whose text overlaps a
// required skill, case-insensitively, and returns up to three of them.
type SellingPointsTool struct{}

func NewSellingPointsTool() *SellingPointsTool {
	return &SellingPointsTool{}
}

func (t *SellingPointsTool) Name() string {
	return "identify_key_selling_points"
}

func (t *SellingPointsTool) Description() string {
	return "Identify the candidate's strongest selling points for this specific job"
}

func (t *SellingPointsTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resume_data": map[string]any{
				"type":        "object",
				"description": "Parsed resume data",
			},
			"job_data": map[string]any{
				"type":        "object",
				"description": "Parsed job description data",
			},
		},
		"required": []string{"resume_data", "job_data"},
	}
}

func (t *SellingPointsTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var in MatchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	var resume model.ResumeRecord
	if err := json.Unmarshal(in.ResumeData, &resume); err != nil {
		return "", fmt.Errorf("invalid resume data: %w", err)
	}
	var job model.JobRecord
	if err := json.Unmarshal(in.JobData, &job); err != nil {
		return "", fmt.Errorf("invalid job data: %w", err)
	}

	matching := MatchingSkills(resume.Skills, job.RequiredSkills, 3)
	return "Key selling points: " + strings.Join(matching, ", "), nil
}

// MatchingSkills returns up to limit skills whose lowercased text contains
// any lowercased required skill as a substring.
func MatchingSkills(skills, required []string, limit int) []string {
	lowered := make([]string, 0, len(required))
	for _, req := range required {
		lowered = append(lowered, strings.ToLower(req))
	}

	matching := make([]string, 0, limit)
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, req := range lowered {
			if req != "" && strings.Contains(skillLower, req) {
				matching = append(matching, skill)
				break
			}
		}
		if len(matching) == limit {
			break
		}
	}
	return matching
}
