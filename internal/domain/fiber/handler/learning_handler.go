package handler

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/dto"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/sakhisetu/skillbridge-backend/internal/util"
)

type LearningHandler struct {
	uc *usecase.LearningUsecase
}

func NewLearningHandler(uc *usecase.LearningUsecase) *LearningHandler {
	return &LearningHandler{uc: uc}
}

func (h *LearningHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.Health)
	app.Get("/api/courses", h.Courses)
	app.Get("/api/roadmap/:userId", h.Roadmap)
	app.Post("/api/roadmap", h.AddRoadmapEntry)
	app.Patch("/api/roadmap/:id", h.UpdateRoadmapEntry)
	app.Delete("/api/roadmap/:id", h.DeleteRoadmapEntry)
	app.Post("/api/skill-gap/save", h.SaveSkillGap)
	app.Post("/api/roadmap/generate", h.GenerateRoadmap)
}

func (h *LearningHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

func (h *LearningHandler) Courses(c *fiber.Ctx) error {
	courses, err := h.uc.Courses()
	if err != nil {
		return util.ServerError(c, "Failed to fetch courses", err)
	}
	return c.JSON(courses)
}

func (h *LearningHandler) Roadmap(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	entries, err := h.uc.Roadmap(userID)
	if err != nil {
		return util.ServerError(c, "Failed to fetch roadmap", err)
	}
	return c.JSON(entries)
}

func (h *LearningHandler) AddRoadmapEntry(c *fiber.Ctx) error {
	var req dto.CreateRoadmapEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.UserID == 0 || req.SkillName == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "user_id and skill_name are required")
	}

	entry := model.RoadmapEntry{
		UserID:         req.UserID,
		SkillName:      req.SkillName,
		CourseName:     req.CourseName,
		CourseProvider: req.CourseProvider,
		CourseLink:     req.CourseLink,
		TargetDate:     req.TargetDate,
		Notes:          req.Notes,
	}
	if err := h.uc.AddRoadmapEntry(&entry); err != nil {
		return util.ServerError(c, "Failed to add to roadmap", err)
	}
	return c.JSON(entry)
}

// roadmap columns a client may change through PATCH /api/roadmap/:id
var roadmapUpdateColumns = []string{"skill_name", "course_name", "course_provider", "course_link", "target_date", "status", "notes"}

func (h *LearningHandler) UpdateRoadmapEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid roadmap id")
	}

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	for _, col := range roadmapUpdateColumns {
		if value, ok := body[col]; ok {
			updates[col] = value
		}
	}

	entry, err := h.uc.UpdateRoadmapEntry(id, updates)
	if err != nil {
		return util.ServerError(c, "Failed to update roadmap", err)
	}
	return c.JSON(entry)
}

func (h *LearningHandler) DeleteRoadmapEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid roadmap id")
	}

	if err := h.uc.DeleteRoadmapEntry(id); err != nil {
		return util.ServerError(c, "Failed to delete roadmap entry", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *LearningHandler) SaveSkillGap(c *fiber.Ctx) error {
	var req dto.SaveSkillGapRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.uc.SaveInterviewResults(req.UserID, req.CareerIntent, req.SessionData, req.TotalScore)
	if err != nil {
		return util.ServerError(c, "Failed to save results", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

func (h *LearningHandler) GenerateRoadmap(c *fiber.Ctx) error {
	var req dto.GenerateRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	entries, err := h.uc.GenerateRoadmap(req.UserID, req.CareerIntent, req.Results)
	if err != nil {
		return util.ServerError(c, "Failed to generate roadmap", err)
	}
	return c.JSON(dto.GenerateRoadmapResponse{Success: true, Roadmap: entries})
}
