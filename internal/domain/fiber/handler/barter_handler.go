package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/dto"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/sakhisetu/skillbridge-backend/internal/util"
)

type BarterHandler struct {
	uc *usecase.BarterUsecase
}

func NewBarterHandler(uc *usecase.BarterUsecase) *BarterHandler {
	return &BarterHandler{uc: uc}
}

func (h *BarterHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/barter", h.List)
	app.Post("/api/barter", h.Create)
	app.Post("/api/barter-requests", h.CreateRequest)
	app.Get("/api/barter-requests/:userId", h.ListRequests)
	app.Patch("/api/barter-requests/:id", h.UpdateRequestStatus)
}

func (h *BarterHandler) List(c *fiber.Ctx) error {
	offers, err := h.uc.List()
	if err != nil {
		return util.ServerError(c, "Failed to fetch barter offers", err)
	}
	return c.JSON(offers)
}

func (h *BarterHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBarterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	offer, err := h.uc.Create(&model.BarterOffer{
		Offer:        req.Offer,
		Want:         req.Want,
		Location:     req.Location,
		TeachingMode: req.TeachingMode,
		UserID:       req.UserID,
	})
	if err != nil {
		return util.ServerError(c, "Failed to create barter offer", err)
	}
	return c.JSON(offer)
}

func (h *BarterHandler) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.FromUserID == 0 || req.ToUserID == 0 {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "from_user_id and to_user_id are required")
	}

	created, err := h.uc.CreateRequest(&model.BarterRequest{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		BarterID:   req.BarterID,
		Message:    req.Message,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateRequest) {
			return util.ErrorResponse(c, fiber.StatusConflict, "You already have a pending request to this user")
		}
		return util.ServerError(c, "Failed to send request", err)
	}
	return c.JSON(created)
}

func (h *BarterHandler) ListRequests(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	incoming, outgoing, err := h.uc.ListRequests(userID)
	if err != nil {
		return util.ServerError(c, "Failed to fetch requests", err)
	}
	return c.JSON(dto.ConnectionListResponse{Incoming: incoming, Outgoing: outgoing})
}

func (h *BarterHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.UpdateConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status != "accepted" && req.Status != "rejected" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, `Status must be "accepted" or "rejected"`)
	}

	updated, err := h.uc.UpdateRequestStatus(id, req.Status)
	if err != nil {
		return util.ServerError(c, "Failed to update request", err)
	}
	return c.JSON(updated)
}
