package dto

import "github.com/sakhisetu/skillbridge-backend/internal/model"

type CreateBarterRequest struct {
	Offer        string `json:"offer"`
	Want         string `json:"want"`
	Location     string `json:"location"`
	TeachingMode string `json:"teaching_mode"`
	UserID       int    `json:"user_id"`
}

type CreateConnectionRequest struct {
	FromUserID int    `json:"from_user_id"`
	ToUserID   int    `json:"to_user_id"`
	BarterID   *int   `json:"barter_id"`
	Message    string `json:"message"`
}

type UpdateConnectionRequest struct {
	Status string `json:"status"`
}

type ConnectionListResponse struct {
	Incoming []model.BarterRequest `json:"incoming"`
	Outgoing []model.BarterRequest `json:"outgoing"`
}
