package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/careerforge/cover-letter-api/internal/model"
	"github.com/careerforge/cover-letter-api/internal/repository"
	"github.com/careerforge/cover-letter-api/internal/service"
	"github.com/careerforge/cover-letter-api/internal/util"
	"github.com/pgvector/pgvector-go"
)

const (
	// pipelineTimeout is the wrapping alarm around one full generation run;
	// a stuck model call surfaces as a timeout instead of hanging the
	// request forever.
	pipelineTimeout = 90 * time.Second

	// reuseDistance is the embedding distance under which a previously
	// analyzed job description is treated as the same posting.
	reuseDistance = 0.1
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CoverLetterUsecase drives the four-stage pipeline: Validate, Parse
// Resume, Analyze Job, Synthesize. Each stage is a hard gate; the first
// failure short-circuits to a user-facing message and nothing partial is
// merged forward. Persistence and the similarity cache are best-effort
// extras around that spine.
type CoverLetterUsecase struct {
	tasks    *repository.LetterTaskRepository
	jobs     *repository.JobRepository
	analyzer service.AnalyzerServiceInterface
	letters  service.LetterServiceInterface
	gemini   service.GeminiServiceInterface
}

func NewCoverLetterUsecase(
	tasks *repository.LetterTaskRepository,
	jobs *repository.JobRepository,
	analyzer service.AnalyzerServiceInterface,
	letters service.LetterServiceInterface,
	gemini service.GeminiServiceInterface,
) *CoverLetterUsecase {
	return &CoverLetterUsecase{
		tasks:    tasks,
		jobs:     jobs,
		analyzer: analyzer,
		letters:  letters,
		gemini:   gemini,
	}
}

// Generate runs one synchronous pipeline to completion and returns the
// content plus a status string for the UI collaborator. Every failure mode
// terminates in a human-readable string; nothing propagates as a fault.
func (uc *CoverLetterUsecase) Generate(ctx context.Context, resumePath, jobDescription, fileType string) (string, string) {
	if ok, msg := util.ValidateInputs(resumePath, jobDescription); !ok {
		return msg, StatusFailed
	}

	detectedType := util.DetectFileType(resumePath, fileType)

	if ok, msg := util.ValidateFileSize(resumePath, util.MaxResumeSizeMB); !ok {
		return msg, StatusFailed
	}

	ctx, cancel := context.WithTimeout(ctx, pipelineTimeout)
	defer cancel()

	task := &model.LetterTask{
		JobDescription: jobDescription,
		FileType:       detectedType,
		Status:         "processing",
	}
	uc.createTask(task)

	resumeText, err := util.ExtractResumeText(resumePath, detectedType)
	if err != nil {
		return uc.fail(task, fmt.Sprintf("Error parsing resume: %v", err))
	}
	task.ResumeText = resumeText

	resumeRecord, err := uc.analyzer.ParseResume(ctx, resumeText)
	if err != nil {
		return uc.fail(task, fmt.Sprintf("Error parsing resume: %v", err))
	}

	jobRecord := uc.lookupCachedJob(ctx, jobDescription)
	if jobRecord == nil {
		jobRecord, err = uc.analyzer.AnalyzeJob(ctx, jobDescription)
		if err != nil {
			return uc.fail(task, fmt.Sprintf("Error analyzing job description: %v", err))
		}
		uc.storeAnalyzedJob(ctx, jobDescription, jobRecord)
	}

	if raw, err := json.Marshal(resumeRecord); err == nil {
		task.ResumeRecord = string(raw)
	}
	if raw, err := json.Marshal(jobRecord); err == nil {
		task.JobRecord = string(raw)
	}

	letter, err := uc.letters.Generate(ctx, resumeRecord, jobRecord)
	if err != nil {
		return uc.fail(task, fmt.Sprintf("Error generating cover letter: %v", err))
	}
	task.CoverLetter = letter

	final, err := uc.letters.Finalize(letter, resumeRecord, jobRecord)
	if err != nil {
		// The raw letter text rides along so the user can still recover it.
		return uc.fail(task, fmt.Sprintf("Error finalizing cover letter: %v\n\nGenerated content:\n%s", err, letter))
	}

	task.CoverLetter = final
	task.Status = StatusCompleted
	uc.updateTask(task)

	return final, StatusCompleted
}

// GetResult returns a previously stored generation run.
func (uc *CoverLetterUsecase) GetResult(id string) (*model.LetterTask, error) {
	if uc.tasks == nil {
		return nil, fmt.Errorf("task storage is not configured")
	}
	return uc.tasks.FindTaskByID(id)
}

// ListAnalyzedJobs returns every cached job analysis.
func (uc *CoverLetterUsecase) ListAnalyzedJobs() ([]model.AnalyzedJob, error) {
	if uc.jobs == nil {
		return nil, fmt.Errorf("job storage is not configured")
	}
	return uc.jobs.GetJobs()
}

// lookupCachedJob tries to reuse the record of a near-identical posting.
// Any failure just means a fresh analysis.
func (uc *CoverLetterUsecase) lookupCachedJob(ctx context.Context, jobDescription string) *model.JobRecord {
	if uc.gemini == nil || uc.jobs == nil {
		return nil
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		log.Printf("job embedding failed, skipping cache lookup: %v", err)
		return nil
	}

	nearest, err := uc.jobs.FindNearest(pgvector.NewVector(embedding))
	if err != nil || nearest.Distance > reuseDistance || nearest.Record == "" {
		return nil
	}

	var record model.JobRecord
	if err := json.Unmarshal([]byte(nearest.Record), &record); err != nil {
		return nil
	}
	log.Printf("reusing cached job analysis %s (distance %.3f)", nearest.ID, nearest.Distance)
	return &record
}

func (uc *CoverLetterUsecase) storeAnalyzedJob(ctx context.Context, jobDescription string, record *model.JobRecord) {
	if uc.gemini == nil || uc.jobs == nil {
		return
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		log.Printf("job embedding failed, analysis not cached: %v", err)
		return
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return
	}

	job := &model.AnalyzedJob{
		CompanyName: record.CompanyName,
		JobTitle:    record.JobTitle,
		Content:     jobDescription,
		Record:      string(raw),
		Embedding:   pgvector.NewVector(embedding),
	}
	if err := uc.jobs.CreateJob(job); err != nil {
		log.Printf("failed to cache job analysis: %v", err)
	}
}

func (uc *CoverLetterUsecase) fail(task *model.LetterTask, msg string) (string, string) {
	task.Status = StatusFailed
	task.ErrorMessage = msg
	uc.updateTask(task)
	return msg, StatusFailed
}

// Task persistence never fails a generation; storage trouble is logged and
// the pipeline carries on.
func (uc *CoverLetterUsecase) createTask(task *model.LetterTask) {
	if uc.tasks == nil {
		return
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	if err := uc.tasks.CreateTask(task); err != nil {
		log.Printf("failed to create letter task: %v", err)
	}
}

func (uc *CoverLetterUsecase) updateTask(task *model.LetterTask) {
	if uc.tasks == nil {
		return
	}
	task.UpdatedAt = time.Now()
	if err := uc.tasks.UpdateTask(task); err != nil {
		log.Printf("failed to update letter task: %v", err)
	}
}
