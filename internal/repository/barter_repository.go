package repository

import (
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type BarterRepository struct {
	db *gorm.DB
}

func NewBarterRepository(db *gorm.DB) *BarterRepository {
	return &BarterRepository{db}
}

func (r *BarterRepository) List() ([]model.BarterOffer, error) {
	var offers []model.BarterOffer
	err := r.db.Preload("User").Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *BarterRepository) ListByUser(userID int) ([]model.BarterOffer, error) {
	var offers []model.BarterOffer
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *BarterRepository) Create(offer *model.BarterOffer) (*model.BarterOffer, error) {
	if err := r.db.Create(offer).Error; err != nil {
		return nil, err
	}
	var created model.BarterOffer
	err := r.db.Preload("User").First(&created, "id = ?", offer.ID).Error
	return &created, err
}

// SearchMatches is the case-insensitive prefilter the scoring engine runs on:
// offers wanting mySkill OR offering targetSkill. With only one term supplied
// the filter narrows to that single field.
func (r *BarterRepository) SearchMatches(mySkill, targetSkill string) ([]model.BarterOffer, error) {
	query := r.db.Preload("User")
	switch {
	case mySkill != "" && targetSkill != "":
		query = query.Where("want ILIKE ? OR offer ILIKE ?", "%"+mySkill+"%", "%"+targetSkill+"%")
	case mySkill != "":
		query = query.Where("want ILIKE ?", "%"+mySkill+"%")
	case targetSkill != "":
		query = query.Where("offer ILIKE ?", "%"+targetSkill+"%")
	}

	var offers []model.BarterOffer
	err := query.Find(&offers).Error
	return offers, err
}
