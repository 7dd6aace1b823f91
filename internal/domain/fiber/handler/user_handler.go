package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/dto"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/sakhisetu/skillbridge-backend/internal/util"
	"gorm.io/gorm"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/login", h.Login)
	app.Get("/api/user/:id", h.GetProfile)
	app.Put("/api/user/:id", h.UpdateProfile)
	app.Post("/api/ratings", h.SubmitRating)
	app.Get("/api/ratings/:userId", h.GetRatings)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
		case errors.Is(err, usecase.ErrInvalidPassword):
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid password")
		default:
			return util.ServerError(c, "Login failed", err)
		}
	}
	return c.JSON(dto.LoginResponse{User: user})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	user, barters, err := h.uc.GetProfile(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return util.ServerError(c, "Failed to fetch user", err)
	}
	return c.JSON(dto.UserProfileResponse{User: *user, Barters: barters})
}

// profile columns a client may change through PUT /api/user/:id
var profileUpdateColumns = []string{"name", "skills", "location", "bio", "profile_img", "career_goal"}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	for _, col := range profileUpdateColumns {
		value, ok := body[col]
		if !ok {
			continue
		}
		if col == "skills" {
			// jsonb column; re-encode whatever shape the client sent
			encoded, err := json.Marshal(value)
			if err != nil {
				continue
			}
			updates[col] = string(encoded)
			continue
		}
		updates[col] = value
	}

	user, err := h.uc.UpdateProfile(id, updates)
	if err != nil {
		return util.ServerError(c, "Failed to update user", err)
	}
	return c.JSON(user)
}

func (h *UserHandler) SubmitRating(c *fiber.Ctx) error {
	var req dto.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.FromUserID == 0 || req.ToUserID == 0 || req.Rating == 0 {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "from_user_id, to_user_id, and rating are required")
	}
	if req.FromUserID == req.ToUserID {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "You cannot rate yourself")
	}

	rating, err := h.uc.SubmitRating(&model.Rating{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Rating:     req.Rating,
		Review:     req.Review,
	})
	if err != nil {
		return util.ServerError(c, "Failed to submit rating", err)
	}
	return c.JSON(rating)
}

func (h *UserHandler) GetRatings(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	ratings, average, err := h.uc.GetRatings(userID)
	if err != nil {
		return util.ServerError(c, "Failed to fetch ratings", err)
	}
	return c.JSON(dto.RatingsResponse{Ratings: ratings, Average: average, Count: len(ratings)})
}
