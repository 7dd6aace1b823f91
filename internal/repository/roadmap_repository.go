package repository

import (
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type RoadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{db}
}

func (r *RoadmapRepository) ListByUser(userID int) ([]model.RoadmapEntry, error) {
	var entries []model.RoadmapEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *RoadmapRepository) Create(entry *model.RoadmapEntry) error {
	return r.db.Create(entry).Error
}

func (r *RoadmapRepository) CreateBatch(entries []model.RoadmapEntry) error {
	return r.db.Create(&entries).Error
}

func (r *RoadmapRepository) Update(id int, updates map[string]any) (*model.RoadmapEntry, error) {
	if err := r.db.Model(&model.RoadmapEntry{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var entry model.RoadmapEntry
	err := r.db.First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *RoadmapRepository) Delete(id int) error {
	return r.db.Delete(&model.RoadmapEntry{}, "id = ?", id).Error
}
