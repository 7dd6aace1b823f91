package usecase

import (
	"errors"
	"math"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserUsecase struct {
	userRepo   *repository.UserRepository
	barterRepo *repository.BarterRepository
	ratingRepo *repository.RatingRepository
}

func NewUserUsecase(userRepo *repository.UserRepository, barterRepo *repository.BarterRepository, ratingRepo *repository.RatingRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, barterRepo: barterRepo, ratingRepo: ratingRepo}
}

// Login checks the stored password verbatim. Passwords are kept in plaintext
// by the users table; hashing them is outside this service's hands.
func (uc *UserUsecase) Login(email, password string) (*model.User, error) {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// GetProfile returns the user together with their own barter offers.
func (uc *UserUsecase) GetProfile(id int) (*model.User, []model.BarterOffer, error) {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	barters, err := uc.barterRepo.ListByUser(id)
	if err != nil {
		barters = []model.BarterOffer{}
	}
	return user, barters, nil
}

func (uc *UserUsecase) UpdateProfile(id int, updates map[string]any) (*model.User, error) {
	return uc.userRepo.UpdateProfile(id, updates)
}

func (uc *UserUsecase) SubmitRating(rating *model.Rating) (*model.Rating, error) {
	return uc.ratingRepo.Upsert(rating)
}

// GetRatings returns the ratings received by a user with their average
// rounded to one decimal.
func (uc *UserUsecase) GetRatings(toUserID int) ([]model.Rating, float64, error) {
	ratings, err := uc.ratingRepo.ListForUser(toUserID)
	if err != nil {
		return nil, 0, err
	}
	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}
	return ratings, average, nil
}
