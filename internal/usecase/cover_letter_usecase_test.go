package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/careerforge/cover-letter-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	resume    *model.ResumeRecord
	resumeErr error
	job       *model.JobRecord
	jobErr    error
}

func (f *fakeAnalyzer) ParseResume(ctx context.Context, resumeText string) (*model.ResumeRecord, error) {
	return f.resume, f.resumeErr
}

func (f *fakeAnalyzer) AnalyzeJob(ctx context.Context, jobDescription string) (*model.JobRecord, error) {
	return f.job, f.jobErr
}

type fakeLetters struct {
	letter      string
	generateErr error
	finalizeErr error
}

func (f *fakeLetters) Generate(ctx context.Context, resume *model.ResumeRecord, job *model.JobRecord) (string, error) {
	return f.letter, f.generateErr
}

func (f *fakeLetters) Finalize(letter string, resume *model.ResumeRecord, job *model.JobRecord) (string, error) {
	if f.finalizeErr != nil {
		return "", f.finalizeErr
	}
	header := "# Cover Letter for " + job.JobTitle + " at " + job.CompanyName + "\n\n---\n\n"
	return header + letter, nil
}

func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestUsecase(analyzer *fakeAnalyzer, letters *fakeLetters) *CoverLetterUsecase {
	// No storage and no embedding cache; the pipeline must work without them.
	return NewCoverLetterUsecase(nil, nil, analyzer, letters, nil)
}

func TestGenerateHappyPath(t *testing.T) {
	resumePath := writeResume(t, "Name: Jane Doe\nSkills: Python, SQL")
	analyzer := &fakeAnalyzer{
		resume: &model.ResumeRecord{Name: "Jane Doe", Skills: []string{"Python", "SQL"}},
		job:    &model.JobRecord{CompanyName: "Acme Corp", JobTitle: "Data Engineer"},
	}
	letters := &fakeLetters{letter: "Dear Hiring Manager,\n\nI am Jane Doe and I would be thrilled to join Acme Corp."}
	uc := newTestUsecase(analyzer, letters)

	content, status := uc.Generate(context.Background(), resumePath, "Data Engineer at Acme Corp", "auto")

	assert.Equal(t, StatusCompleted, status)
	assert.True(t, strings.HasPrefix(content, "# Cover Letter for Data Engineer at Acme Corp"))
	assert.Contains(t, content, "Jane Doe")
}

func TestGenerateValidationShortCircuits(t *testing.T) {
	uc := newTestUsecase(&fakeAnalyzer{}, &fakeLetters{})

	content, status := uc.Generate(context.Background(), "", "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "❌ Please upload a resume file.", content)

	content, status = uc.Generate(context.Background(), "/tmp/resume.txt", "   ", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "❌ Please provide a job description.", content)
}

func TestGenerateMissingFile(t *testing.T) {
	uc := newTestUsecase(&fakeAnalyzer{}, &fakeLetters{})

	content, status := uc.Generate(context.Background(), "/nonexistent/resume.txt", "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "❌ Could not read file size.", content)
}

func TestGenerateResumeParseFailure(t *testing.T) {
	resumePath := writeResume(t, "resume text")
	analyzer := &fakeAnalyzer{resumeErr: errors.New("model request timeout")}
	uc := newTestUsecase(analyzer, &fakeLetters{})

	content, status := uc.Generate(context.Background(), resumePath, "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "Error parsing resume: model request timeout", content)
}

func TestGenerateJobAnalysisFailure(t *testing.T) {
	resumePath := writeResume(t, "resume text")
	analyzer := &fakeAnalyzer{
		resume: &model.ResumeRecord{Name: "Jane Doe"},
		jobErr: errors.New("model error: rate limited (rate_limit)"),
	}
	uc := newTestUsecase(analyzer, &fakeLetters{})

	content, status := uc.Generate(context.Background(), resumePath, "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.True(t, strings.HasPrefix(content, "Error analyzing job description: "))
}

func TestGenerateSynthesisFailure(t *testing.T) {
	resumePath := writeResume(t, "resume text")
	analyzer := &fakeAnalyzer{
		resume: &model.ResumeRecord{Name: "Jane Doe"},
		job:    &model.JobRecord{CompanyName: "Acme Corp", JobTitle: "Data Engineer"},
	}
	letters := &fakeLetters{generateErr: errors.New("model returned an empty letter")}
	uc := newTestUsecase(analyzer, letters)

	content, status := uc.Generate(context.Background(), resumePath, "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "Error generating cover letter: model returned an empty letter", content)
}

func TestGenerateFinalizeFailureCarriesLetter(t *testing.T) {
	resumePath := writeResume(t, "resume text")
	analyzer := &fakeAnalyzer{
		resume: &model.ResumeRecord{Name: "Jane Doe"},
		job:    &model.JobRecord{CompanyName: "Acme Corp", JobTitle: "Data Engineer"},
	}
	letters := &fakeLetters{
		letter:      "Dear Hiring Manager, the letter body.",
		finalizeErr: errors.New("formatting failed"),
	}
	uc := newTestUsecase(analyzer, letters)

	content, status := uc.Generate(context.Background(), resumePath, "some job", "auto")
	assert.Equal(t, StatusFailed, status)
	assert.True(t, strings.HasPrefix(content, "Error finalizing cover letter: formatting failed"))
	assert.Contains(t, content, "\n\nGenerated content:\nDear Hiring Manager, the letter body.")
}

func TestGetResultWithoutStorage(t *testing.T) {
	uc := newTestUsecase(&fakeAnalyzer{}, &fakeLetters{})
	_, err := uc.GetResult("some-id")
	assert.Error(t, err)
}
