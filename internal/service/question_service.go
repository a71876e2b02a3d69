package service

import (
	"competency_backend/internal/model"
	"competency_backend/internal/repository"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) List() ([]model.Question, error) {
	return s.Repo.FindAll()
}

func (s *QuestionService) ListByType(questionType string) ([]model.Question, error) {
	return s.Repo.FindByType(questionType)
}

func (s *QuestionService) ListBySkill(skillID uint) ([]model.QuestionWithSkill, error) {
	return s.Repo.FindBySkill(skillID)
}

func (s *QuestionService) ListByCompetency(competencyID uint) ([]model.QuestionWithSkill, error) {
	return s.Repo.FindByCompetency(competencyID)
}

func (s *QuestionService) Add(req *model.CreateQuestionRequest) (int64, error) {
	question := &model.Question{
		QuestionType:        *req.QuestionType,
		QuestionDescription: *req.QuestionDescription,
		Options:             req.Options,
		QuestionsAnswer:     *req.QuestionsAnswer,
		QuestionHint:        req.QuestionHint,
	}
	return s.Repo.Create(question)
}

func (s *QuestionService) LinkToSkill(questionID, skillID uint) (int64, error) {
	return s.Repo.LinkToSkill(questionID, skillID)
}
