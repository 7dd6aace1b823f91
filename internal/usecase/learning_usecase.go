package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sakhisetu/skillbridge-backend/internal/matching"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/repository"
)

// scores below this mark a question as a skill gap worth a roadmap entry
const gapScoreThreshold = 6

type LearningUsecase struct {
	courseRepo    *repository.CourseRepository
	roadmapRepo   *repository.RoadmapRepository
	interviewRepo *repository.InterviewRepository
	engine        *matching.Engine
}

func NewLearningUsecase(courseRepo *repository.CourseRepository, roadmapRepo *repository.RoadmapRepository, interviewRepo *repository.InterviewRepository, engine *matching.Engine) *LearningUsecase {
	return &LearningUsecase{courseRepo: courseRepo, roadmapRepo: roadmapRepo, interviewRepo: interviewRepo, engine: engine}
}

func (uc *LearningUsecase) Courses() ([]model.Course, error) {
	return uc.courseRepo.GetCourses()
}

func (uc *LearningUsecase) Roadmap(userID int) ([]model.RoadmapEntry, error) {
	return uc.roadmapRepo.ListByUser(userID)
}

func (uc *LearningUsecase) AddRoadmapEntry(entry *model.RoadmapEntry) error {
	return uc.roadmapRepo.Create(entry)
}

func (uc *LearningUsecase) UpdateRoadmapEntry(id int, updates map[string]any) (*model.RoadmapEntry, error) {
	return uc.roadmapRepo.Update(id, updates)
}

func (uc *LearningUsecase) DeleteRoadmapEntry(id int) error {
	return uc.roadmapRepo.Delete(id)
}

// SaveInterviewResults persists one finished mock-interview session in bulk.
func (uc *LearningUsecase) SaveInterviewResults(userID int, careerIntent string, sessionData json.RawMessage, totalScore int) (*model.InterviewResult, error) {
	if len(sessionData) == 0 {
		sessionData = json.RawMessage("[]")
	}
	result := &model.InterviewResult{
		UserID:       userID,
		CareerIntent: careerIntent,
		SessionData:  string(sessionData),
		TotalScore:   totalScore,
		CreatedAt:    time.Now(),
	}
	if err := uc.interviewRepo.SaveResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateRoadmap turns a finished interview session into roadmap entries:
// courses mapped from the career intent, plus one soft-skill entry built from
// the lowest-scoring questions.
func (uc *LearningUsecase) GenerateRoadmap(userID int, careerIntent string, results []model.InterviewExchange) ([]model.RoadmapEntry, error) {
	courses, err := uc.courseRepo.GetCourses()
	if err != nil {
		return nil, err
	}

	intentLower := strings.ToLower(careerIntent)
	skillName := intentLower
	if skillName == "" {
		skillName = "Career Goal"
	}

	entries := []model.RoadmapEntry{}
	for _, courseName := range uc.engine.SuggestCourses(careerIntent) {
		for _, course := range courses {
			if course.Name == courseName {
				entries = append(entries, model.RoadmapEntry{
					UserID:         userID,
					SkillName:      skillName,
					CourseName:     course.Name,
					CourseProvider: course.Provider,
					CourseLink:     course.Link,
					Status:         "planned",
					Notes:          "Recommended based on your dream career.",
				})
				break
			}
		}
	}

	gaps := []string{}
	for _, r := range results {
		if r.Score < gapScoreThreshold {
			gaps = append(gaps, r.Question)
		}
	}
	if len(gaps) > 0 {
		if len(gaps) > 2 {
			gaps = gaps[:2]
		}
		entries = append(entries, model.RoadmapEntry{
			UserID:    userID,
			SkillName: "Core Soft Skills",
			Status:    "planned",
			Notes:     fmt.Sprintf("Based on your AI interview, focus on: %s.", strings.Join(gaps, ", ")),
		})
	}

	if len(entries) > 0 {
		if err := uc.roadmapRepo.CreateBatch(entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
