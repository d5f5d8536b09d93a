package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// AnalyzedJob caches the structured extraction of a job description,
// keyed by an embedding of the raw text so near-identical postings can
// reuse a previous analysis instead of another model call.
type AnalyzedJob struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyName string          `json:"company_name"`
	JobTitle    string          `json:"job_title"`
	Content     string          `gorm:"type:text" json:"content"`
	Record      string          `gorm:"type:jsonb" json:"record"`
	Embedding   pgvector.Vector `gorm:"type:vector(3072)" json:"embedding"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (j *AnalyzedJob) TableName() string {
	return "analyzed_jobs"
}
