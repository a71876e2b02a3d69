package service

import (
	"errors"

	"competency_backend/internal/model"
	"competency_backend/internal/repository"
	"competency_backend/internal/util"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

func (s *AnalyticsService) UserProgressSummary(userID uint) ([]model.ProgressSummary, error) {
	return s.Repo.UserProgressSummary(userID)
}

func (s *AnalyticsService) CompetencyStatistics(competencyID uint) (*model.CompetencyStatistics, error) {
	stats, err := s.Repo.CompetencyStatistics(competencyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCompetencyNotFound
	}
	return stats, err
}
