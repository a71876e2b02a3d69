package service

import (
	"competency_backend/internal/model"
	"competency_backend/internal/repository"
)

type CompetencyService struct {
	Repo *repository.CompetencyRepository
}

func NewCompetencyService(repo *repository.CompetencyRepository) *CompetencyService {
	return &CompetencyService{Repo: repo}
}

func (s *CompetencyService) List() ([]model.Competency, error) {
	return s.Repo.FindAll()
}

func (s *CompetencyService) GetByCode(code string) ([]model.Competency, error) {
	return s.Repo.FindByCode(code)
}

func (s *CompetencyService) Add(req *model.CreateCompetencyRequest) (int64, error) {
	competency := &model.Competency{
		CompetencyCode: *req.CompetencyCode,
		CompetencyName: *req.CompetencyName,
		DomainCode:     *req.DomainCode,
		DomainName:     *req.DomainName,
		Description:    req.Description,
	}
	return s.Repo.Create(competency)
}
