package dto

import (
	"time"

	"github.com/google/uuid"
)

type LetterTaskDTO struct {
	ID           uuid.UUID `json:"id"`
	Status       string    `json:"status"` // "processing", "completed", "failed"
	FileType     string    `json:"file_type"`
	ResumeRecord string    `json:"resume_record"`
	JobRecord    string    `json:"job_record"`
	CoverLetter  string    `json:"cover_letter"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
