package repository

import (
	"github.com/careerforge/cover-letter-api/internal/model"
	"gorm.io/gorm"
)

type LetterTaskRepository struct {
	db *gorm.DB
}

func NewLetterTaskRepository(db *gorm.DB) *LetterTaskRepository {
	return &LetterTaskRepository{db}
}

func (r *LetterTaskRepository) CreateTask(task *model.LetterTask) error {
	return r.db.Create(task).Error
}

func (r *LetterTaskRepository) UpdateTask(task *model.LetterTask) error {
	return r.db.Save(task).Error
}

func (r *LetterTaskRepository) FindTaskByID(id string) (*model.LetterTask, error) {
	var task model.LetterTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}
