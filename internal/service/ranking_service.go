package service

import (
	"errors"

	"competency_backend/internal/model"
	"competency_backend/internal/repository"
	"competency_backend/internal/util"

	"gorm.io/gorm"
)

type RankingService struct {
	Repo *repository.RankingRepository
}

func NewRankingService(repo *repository.RankingRepository) *RankingService {
	return &RankingService{Repo: repo}
}

func (s *RankingService) ListByUser(userID uint) ([]model.RankingWithCompetency, error) {
	return s.Repo.FindByUser(userID)
}

func (s *RankingService) Get(userID, competencyID uint) (*model.RankingWithCompetency, error) {
	ranking, err := s.Repo.FindByUserAndCompetency(userID, competencyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRankingNotFound
	}
	return ranking, err
}

func (s *RankingService) Upsert(userID, competencyID uint, skillRank int) (int64, error) {
	return s.Repo.Upsert(&model.UserSkill{
		UserID:       userID,
		CompetencyID: competencyID,
		SkillRank:    skillRank,
	})
}

func (s *RankingService) ListUsersByCompetency(competencyID uint, minRank, maxRank *int) ([]model.RankedUser, error) {
	return s.Repo.FindUsersByCompetency(competencyID, minRank, maxRank)
}
