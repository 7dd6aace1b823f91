package usecase

import (
	"errors"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/repository"
)

// ErrDuplicateRequest means the pair already has a pending connection request.
var ErrDuplicateRequest = errors.New("pending request already exists")

type BarterUsecase struct {
	barterRepo  *repository.BarterRepository
	requestRepo *repository.BarterRequestRepository
}

func NewBarterUsecase(barterRepo *repository.BarterRepository, requestRepo *repository.BarterRequestRepository) *BarterUsecase {
	return &BarterUsecase{barterRepo: barterRepo, requestRepo: requestRepo}
}

func (uc *BarterUsecase) List() ([]model.BarterOffer, error) {
	return uc.barterRepo.List()
}

func (uc *BarterUsecase) Create(offer *model.BarterOffer) (*model.BarterOffer, error) {
	if offer.TeachingMode == "" {
		offer.TeachingMode = "In-Person"
	}
	return uc.barterRepo.Create(offer)
}

// CreateRequest inserts a connection request unless the pair already has one
// pending. The check and the insert are two discrete calls; that window is
// accepted.
func (uc *BarterUsecase) CreateRequest(req *model.BarterRequest) (*model.BarterRequest, error) {
	pending, err := uc.requestRepo.HasPending(req.FromUserID, req.ToUserID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}
	return uc.requestRepo.Create(req)
}

func (uc *BarterUsecase) ListRequests(userID int) ([]model.BarterRequest, []model.BarterRequest, error) {
	incoming, err := uc.requestRepo.ListIncoming(userID)
	if err != nil {
		return nil, nil, err
	}
	outgoing, err := uc.requestRepo.ListOutgoing(userID)
	if err != nil {
		return nil, nil, err
	}
	return incoming, outgoing, nil
}

func (uc *BarterUsecase) UpdateRequestStatus(id int, status string) (*model.BarterRequest, error) {
	return uc.requestRepo.UpdateStatus(id, status)
}
