package repository

import (
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type BarterRequestRepository struct {
	db *gorm.DB
}

func NewBarterRequestRepository(db *gorm.DB) *BarterRequestRepository {
	return &BarterRequestRepository{db}
}

// HasPending reports whether a pending request between the pair already
// exists. This is the only duplicate guard in the system.
func (r *BarterRequestRepository) HasPending(fromUserID, toUserID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.BarterRequest{}).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?", fromUserID, toUserID, "pending").
		Count(&count).Error
	return count > 0, err
}

func (r *BarterRequestRepository) Create(req *model.BarterRequest) (*model.BarterRequest, error) {
	if err := r.db.Create(req).Error; err != nil {
		return nil, err
	}
	var created model.BarterRequest
	err := r.db.Preload("FromUser").First(&created, "id = ?", req.ID).Error
	return &created, err
}

func (r *BarterRequestRepository) ListIncoming(userID int) ([]model.BarterRequest, error) {
	var requests []model.BarterRequest
	err := r.db.Preload("FromUser").
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *BarterRequestRepository) ListOutgoing(userID int) ([]model.BarterRequest, error) {
	var requests []model.BarterRequest
	err := r.db.Preload("ToUser").
		Where("from_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *BarterRequestRepository) UpdateStatus(id int, status string) (*model.BarterRequest, error) {
	if err := r.db.Model(&model.BarterRequest{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	var updated model.BarterRequest
	err := r.db.Preload("FromUser").First(&updated, "id = ?", id).Error
	return &updated, err
}
