package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/careerforge/cover-letter-api/internal/model"
	"github.com/careerforge/cover-letter-api/internal/tools"
)

type LetterServiceInterface interface {
	Generate(ctx context.Context, resume *model.ResumeRecord, job *model.JobRecord) (string, error)
	Finalize(letter string, resume *model.ResumeRecord, job *model.JobRecord) (string, error)
}

// genState tracks the tool round trip explicitly: the model answers, at
// most one batch of tool calls is executed locally, and one follow-up
// completion produces the final letter.
type genState int

const (
	stateAwaitingModel genState = iota
	stateExecutingTool
	stateAwaitingFinal
	stateDone
)

// LetterService combines a parsed resume and job record into a generation
// prompt, runs it against the hosted model with the match-analysis and
// selling-point tools declared, and formats the result.
type LetterService struct {
	ai       OpenAIServiceInterface
	registry *tools.Registry
	now      func() time.Time
}

func NewLetterService(ai OpenAIServiceInterface) *LetterService {
	registry := tools.NewRegistry()
	registry.Register(tools.NewMatchAnalysisTool())
	registry.Register(tools.NewSellingPointsTool())
	return &LetterService{ai: ai, registry: registry, now: time.Now}
}

// Generate produces the raw letter text, without the metadata header.
func (s *LetterService) Generate(ctx context.Context, resume *model.ResumeRecord, job *model.JobRecord) (string, error) {
	if resume == nil || job == nil {
		return "", errors.New("resume and job records are required")
	}

	messages := []any{
		map[string]string{"role": "system", "content": systemMessage},
		map[string]string{"role": "user", "content": generationPrompt(resume, job)},
	}

	var (
		turn    *AssistantTurn
		letter  string
		pending []ToolCall
		state   = stateAwaitingModel
	)

	for state != stateDone {
		switch state {
		case stateAwaitingModel:
			var err error
			turn, err = s.ai.ChatWithTools(ctx, messages, s.registry.Definitions())
			if err != nil {
				return "", err
			}
			if len(turn.ToolCalls) == 0 {
				letter = turn.Content
				state = stateDone
				break
			}
			messages = append(messages, turn.Raw)
			pending = turn.ToolCalls
			state = stateExecutingTool

		case stateExecutingTool:
			for _, call := range pending {
				messages = append(messages, map[string]string{
					"role":         "tool",
					"tool_call_id": call.ID,
					"name":         call.Name,
					"content":      s.runTool(ctx, call, resume, job),
				})
			}
			state = stateAwaitingFinal

		case stateAwaitingFinal:
			// One follow-up completion, no tools this time.
			final, err := s.ai.ChatWithTools(ctx, messages, nil)
			if err != nil {
				return "", err
			}
			letter = final.Content
			state = stateDone
		}
	}

	if strings.TrimSpace(letter) == "" {
		return "", errors.New("model returned an empty letter")
	}
	return letter, nil
}

// runTool executes a model-requested tool locally. The model's own argument
// payload is ignored in favor of the already-parsed records, so a malformed
// argument string cannot derail the round trip.
func (s *LetterService) runTool(ctx context.Context, call ToolCall, resume *model.ResumeRecord, job *model.JobRecord) string {
	tool, ok := s.registry.Get(call.Name)
	if !ok {
		return "Unknown function"
	}

	resumeJSON, _ := json.Marshal(resume)
	jobJSON, _ := json.Marshal(job)
	input, _ := json.Marshal(tools.MatchInput{ResumeData: resumeJSON, JobData: jobJSON})

	result, err := tool.Execute(ctx, input)
	if err != nil {
		log.Printf("tool %s failed: %v", call.Name, err)
		return "Tool execution failed: " + err.Error()
	}
	return result
}

// Finalize prepends the metadata header. A soft formatting problem degrades
// to the bare letter with a logged warning; the generated text is never
// discarded.
func (s *LetterService) Finalize(letter string, resume *model.ResumeRecord, job *model.JobRecord) (string, error) {
	if strings.TrimSpace(letter) == "" {
		return "", errors.New("cover letter content is empty")
	}
	if resume == nil || job == nil {
		log.Printf("Warning: missing record for metadata header, returning letter as-is")
		return letter, nil
	}

	jobTitle := orDefault(job.JobTitle, "Position")
	companyName := orDefault(job.CompanyName, "Company")
	candidateName := orDefault(resume.Name, "Candidate")

	metadata := fmt.Sprintf(`# Cover Letter for %s at %s

**Generated for:** %s
**Date:** %s
**Position:** %s
**Company:** %s

---

`, jobTitle, companyName, candidateName, s.now().Format("January 2, 2006"), jobTitle, companyName)

	return metadata + letter, nil
}

func generationPrompt(resume *model.ResumeRecord, job *model.JobRecord) string {
	education := make([]string, 0, len(resume.Education))
	for _, e := range resume.Education {
		education = append(education, fmt.Sprintf("%s, %s (%s)", e.Degree, e.Institution, e.Year))
	}

	return fmt.Sprintf(`Create a professional, personalized cover letter based on the following information:

CANDIDATE INFORMATION:
Name: %s
Skills: %s
Experience: %d positions
Education: %s

JOB INFORMATION:
Company: %s
Position: %s
Required Skills: %s
Key Responsibilities: %s

REQUIREMENTS:
1. Write in professional, engaging tone
2. Highlight specific skills and experiences that match the job
3. Show enthusiasm for the company and role
4. Keep it concise but compelling (3-4 paragraphs)
5. Use proper business letter format
6. Include specific examples from the candidate's background
7. Address the hiring manager professionally
8. End with a strong call to action

Format the cover letter in markdown with proper headers and structure.`,
		orDefault(resume.Name, "N/A"),
		strings.Join(resume.Skills, ", "),
		len(resume.Experience),
		strings.Join(education, "; "),
		orDefault(job.CompanyName, "N/A"),
		orDefault(job.JobTitle, "N/A"),
		strings.Join(job.RequiredSkills, ", "),
		strings.Join(job.KeyResponsibilities, ", "))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var _ LetterServiceInterface = (*LetterService)(nil)
