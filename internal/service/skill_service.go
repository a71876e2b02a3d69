package service

import (
	"competency_backend/internal/model"
	"competency_backend/internal/repository"
)

type SkillService struct {
	Repo *repository.SkillRepository
}

func NewSkillService(repo *repository.SkillRepository) *SkillService {
	return &SkillService{Repo: repo}
}

func (s *SkillService) ListByCompetency(competencyID uint) ([]model.SkillWithCompetency, error) {
	return s.Repo.FindByCompetency(competencyID)
}

func (s *SkillService) ListByCompetencyCode(code string) ([]model.SkillWithCompetency, error) {
	return s.Repo.FindByCompetencyCode(code)
}

func (s *SkillService) ListByMMRRange(minMMR, maxMMR int) ([]model.SkillWithCompetency, error) {
	return s.Repo.FindByMMRRange(minMMR, maxMMR)
}

func (s *SkillService) Add(req *model.CreateSkillRequest) (int64, error) {
	skill := &model.Skill{
		CompetencyID:     uint(*req.CompetencyID),
		Stage:            *req.Stage,
		ShortDescription: *req.ShortDescription,
		Description:      req.Description,
		StartMMR:         *req.StartMMR,
		EndMMR:           *req.EndMMR,
	}
	return s.Repo.Create(skill)
}
