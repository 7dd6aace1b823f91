package repository

import (
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// GetJobs returns every posting; scoring reads them as an immutable snapshot.
func (r *JobRepository) GetJobs() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Find(&jobs).Error
	return jobs, err
}
