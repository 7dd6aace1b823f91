package repository

import (
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) SaveResult(result *model.InterviewResult) error {
	return r.db.Create(result).Error
}
