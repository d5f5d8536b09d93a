package repository

import (
	"github.com/careerforge/cover-letter-api/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

type NearestJob struct {
	model.AnalyzedJob
	Distance float64 `json:"distance"`
}

// FindNearest returns the closest cached analysis by embedding distance.
// gorm.ErrRecordNotFound when the table is empty.
func (r *JobRepository) FindNearest(embedding pgvector.Vector) (*NearestJob, error) {
	var job NearestJob
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM analyzed_jobs
        ORDER BY embedding <-> ?
        LIMIT 1
    `, embedding, embedding).Scan(&job).Error
	if err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (r *JobRepository) CreateJob(job *model.AnalyzedJob) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) GetJobs() ([]model.AnalyzedJob, error) {
	var jobs []model.AnalyzedJob
	err := r.db.Find(&jobs).Error
	return jobs, err
}
