package repository

import (
	"errors"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db}
}

// Upsert updates an existing rating from the same pair or inserts a new one.
// Two discrete queries, no transaction; a concurrent duplicate is accepted the
// same way the rest of the system accepts duplicate retries.
func (r *RatingRepository) Upsert(rating *model.Rating) (*model.Rating, error) {
	var existing model.Rating
	err := r.db.First(&existing, "from_user_id = ? AND to_user_id = ?", rating.FromUserID, rating.ToUserID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err == nil {
		existing.Rating = rating.Rating
		existing.Review = rating.Review
		updates := map[string]any{"rating": rating.Rating, "review": rating.Review}
		if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	if err := r.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *RatingRepository) ListForUser(toUserID int) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Preload("FromUser").
		Where("to_user_id = ?", toUserID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}
