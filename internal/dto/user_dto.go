package dto

import "github.com/sakhisetu/skillbridge-backend/internal/model"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User *model.User `json:"user"`
}

type UserProfileResponse struct {
	model.User
	Barters []model.BarterOffer `json:"barters"`
}

type RatingRequest struct {
	FromUserID int    `json:"from_user_id"`
	ToUserID   int    `json:"to_user_id"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
}

type RatingsResponse struct {
	Ratings []model.Rating `json:"ratings"`
	Average float64        `json:"average"`
	Count   int            `json:"count"`
}
