package dto

import (
	"encoding/json"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
)

type SaveSkillGapRequest struct {
	UserID       int             `json:"userId"`
	CareerIntent string          `json:"careerIntent"`
	SessionData  json.RawMessage `json:"sessionData"`
	TotalScore   int             `json:"totalScore"`
}

type GenerateRoadmapRequest struct {
	UserID       int                       `json:"userId"`
	CareerIntent string                    `json:"careerIntent"`
	Results      []model.InterviewExchange `json:"results"`
}

type GenerateRoadmapResponse struct {
	Success bool                 `json:"success"`
	Roadmap []model.RoadmapEntry `json:"roadmap"`
}

type CreateRoadmapEntryRequest struct {
	UserID         int    `json:"user_id"`
	SkillName      string `json:"skill_name"`
	CourseName     string `json:"course_name"`
	CourseProvider string `json:"course_provider"`
	CourseLink     string `json:"course_link"`
	TargetDate     string `json:"target_date"`
	Notes          string `json:"notes"`
}
