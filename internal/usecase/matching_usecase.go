package usecase

import (
	"github.com/sakhisetu/skillbridge-backend/internal/matching"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
)

// JobSource yields the postings the engine ranks.
type JobSource interface {
	GetJobs() ([]model.Job, error)
}

// BarterSource yields the prefiltered offers the engine scores.
type BarterSource interface {
	SearchMatches(mySkill, targetSkill string) ([]model.BarterOffer, error)
}

type MatchingUsecase struct {
	jobRepo    JobSource
	barterRepo BarterSource
	engine     *matching.Engine
}

func NewMatchingUsecase(jobRepo JobSource, barterRepo BarterSource, engine *matching.Engine) *MatchingUsecase {
	return &MatchingUsecase{jobRepo: jobRepo, barterRepo: barterRepo, engine: engine}
}

func (uc *MatchingUsecase) MatchJobs(skillsText string) ([]matching.JobMatch, error) {
	jobs, err := uc.jobRepo.GetJobs()
	if err != nil {
		return nil, err
	}
	return uc.engine.MatchJobs(skillsText, jobs), nil
}

func (uc *MatchingUsecase) MatchBarter(mySkill, targetSkill string, userID int) ([]matching.BarterMatch, error) {
	if mySkill == "" && targetSkill == "" {
		return []matching.BarterMatch{}, nil
	}
	offers, err := uc.barterRepo.SearchMatches(mySkill, targetSkill)
	if err != nil {
		return nil, err
	}
	return uc.engine.MatchBarter(mySkill, targetSkill, offers, userID), nil
}
