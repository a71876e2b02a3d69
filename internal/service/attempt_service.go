package service

import (
	"fmt"
	"time"

	"competency_backend/internal/model"
	"competency_backend/internal/repository"
	"competency_backend/internal/util"
)

type AttemptService struct {
	Repo *repository.AttemptRepository
}

func NewAttemptService(repo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{Repo: repo}
}

func (s *AttemptService) ListByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return s.Repo.FindByUser(userID)
}

func (s *AttemptService) ListByUserAndQuestion(userID, questionID uint) ([]model.AttemptWithQuestion, error) {
	return s.Repo.FindByUserAndQuestion(userID, questionID)
}

func (s *AttemptService) ListCorrectByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return s.Repo.FindCorrectByUser(userID)
}

func (s *AttemptService) ListIncorrectByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return s.Repo.FindIncorrectByUser(userID)
}

// Record 未提供 attempt_time 时留零值，由数据层盖当前时间
func (s *AttemptService) Record(userID uint, req *model.RecordAttemptRequest) (int64, error) {
	attempt := &model.UserQuestion{
		UserID:     userID,
		QuestionID: uint(*req.QuestionID),
		UserAnswer: *req.UserAnswer,
		IsCorrect:  *req.IsCorrect,
	}

	if req.AttemptTime != nil {
		t, err := time.ParseInLocation(util.TimeFormat, *req.AttemptTime, time.Local)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", util.ErrInvalidAttemptTime, *req.AttemptTime)
		}
		attempt.AttemptTime = t
	}

	return s.Repo.Record(attempt)
}
