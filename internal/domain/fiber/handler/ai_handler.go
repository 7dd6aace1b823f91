package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/dto"
	"github.com/sakhisetu/skillbridge-backend/internal/service"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/sakhisetu/skillbridge-backend/internal/util"
)

type AIHandler struct {
	uc     *usecase.InterviewUsecase
	gemini service.GeminiServiceInterface
}

func NewAIHandler(uc *usecase.InterviewUsecase, gemini service.GeminiServiceInterface) *AIHandler {
	return &AIHandler{uc: uc, gemini: gemini}
}

func (h *AIHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/ai/ask", h.Ask)
	app.Post("/api/ai/assess", h.Assess)
	app.Post("/api/ai/transcribe", h.Transcribe)
	app.Post("/api/gemini/generate", h.GeminiGenerate)
}

func (h *AIHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	question := h.uc.AskQuestion(c.UserContext(), string(req.Skills), req.Career, req.History, req.ModelType)
	return c.JSON(dto.AskResponse{Question: question})
}

func (h *AIHandler) Assess(c *fiber.Ctx) error {
	var req dto.AssessRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	assessment := h.uc.AssessAnswer(c.UserContext(), req.Question, req.Answer, req.ModelType)
	return c.JSON(assessment)
}

func (h *AIHandler) Transcribe(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "No audio file provided")
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Transcription failed")
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Transcription failed")
	}

	text := h.uc.Transcribe(c.UserContext(), audio)
	return c.JSON(dto.TranscribeResponse{Text: text})
}

func (h *AIHandler) GeminiGenerate(c *fiber.Ctx) error {
	if !h.gemini.Configured() {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Gemini API key not configured")
	}

	var req dto.GeminiGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Prompt == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Prompt is required")
	}

	maxTokens := req.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 200
	}
	temperature := 0.7
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	text, err := h.gemini.GenerateText(c.UserContext(), req.Prompt, maxTokens, temperature)
	if err != nil {
		return util.ServerError(c, "Gemini API request failed", err)
	}
	return c.JSON(dto.GeminiGenerateResponse{Text: text})
}
