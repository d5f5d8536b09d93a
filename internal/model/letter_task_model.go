package model

import (
	"time"

	"github.com/google/uuid"
)

type LetterTask struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResumeText     string    `gorm:"type:text" json:"resume_text"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	FileType       string    `gorm:"type:varchar(10)" json:"file_type"`
	ResumeRecord   string    `gorm:"type:jsonb" json:"resume_record"`
	JobRecord      string    `gorm:"type:jsonb" json:"job_record"`
	CoverLetter    string    `gorm:"type:text" json:"cover_letter"`
	Status         string    `gorm:"type:varchar(50)" json:"status"` // "processing", "completed", "failed"
	ErrorMessage   string    `gorm:"type:text" json:"error_message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
