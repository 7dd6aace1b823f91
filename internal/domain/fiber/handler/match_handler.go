package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/dto"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/sakhisetu/skillbridge-backend/internal/util"
)

type MatchHandler struct {
	uc *usecase.MatchingUsecase
}

func NewMatchHandler(uc *usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/jobs", h.MatchJobs)
	app.Post("/api/barter/match", h.MatchBarter)
}

func (h *MatchHandler) MatchJobs(c *fiber.Ctx) error {
	var req dto.MatchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	matches, err := h.uc.MatchJobs(string(req.Skills))
	if err != nil {
		return util.ServerError(c, "Failed to fetch jobs", err)
	}
	return c.JSON(matches)
}

func (h *MatchHandler) MatchBarter(c *fiber.Ctx) error {
	var req dto.MatchBarterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	matches, err := h.uc.MatchBarter(req.MySkill, req.TargetSkill, req.UserID)
	if err != nil {
		return util.ServerError(c, "Server error", err)
	}
	return c.JSON(matches)
}
