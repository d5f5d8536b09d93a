package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/careerforge/cover-letter-api/internal/model"
)

type AnalyzerServiceInterface interface {
	ParseResume(ctx context.Context, resumeText string) (*model.ResumeRecord, error)
	AnalyzeJob(ctx context.Context, jobDescription string) (*model.JobRecord, error)
}

// AnalyzerService turns free text into schema-shaped records via the hosted
// model. A malformed reply is silently replaced by the fixed fallback record
// so the caller always has something renderable; only transport/API failures
// come back as errors.
type AnalyzerService struct {
	ai OpenAIServiceInterface
}

func NewAnalyzerService(ai OpenAIServiceInterface) *AnalyzerService {
	return &AnalyzerService{ai: ai}
}

func (s *AnalyzerService) ParseResume(ctx context.Context, resumeText string) (*model.ResumeRecord, error) {
	prompt := fmt.Sprintf(`Analyze this resume and extract the following information in JSON format:

%s

Resume text:
%s

Return only valid JSON, no additional text.`, resumeTemplate, resumeText)

	reply, err := s.ai.CompleteJSON(ctx, resumeAnalysisPrompt, prompt)
	if err != nil {
		return nil, err
	}

	record := &model.ResumeRecord{}
	if err := json.Unmarshal([]byte(cleanJSON(reply)), record); err != nil {
		log.Printf("resume reply was not valid JSON, using fallback record: %v", err)
		return model.FallbackResumeRecord(), nil
	}
	return record, nil
}

func (s *AnalyzerService) AnalyzeJob(ctx context.Context, jobDescription string) (*model.JobRecord, error) {
	prompt := fmt.Sprintf(`Analyze this job description and extract the following information in JSON format:

%s

Job Description:
%s

Return only valid JSON, no additional text.`, jobTemplate, jobDescription)

	reply, err := s.ai.CompleteJSON(ctx, jobAnalysisPrompt, prompt)
	if err != nil {
		return nil, err
	}

	record := &model.JobRecord{}
	if err := json.Unmarshal([]byte(cleanJSON(reply)), record); err != nil {
		log.Printf("job reply was not valid JSON, using fallback record: %v", err)
		return model.FallbackJobRecord(), nil
	}
	return record, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps around
// its JSON answer.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
