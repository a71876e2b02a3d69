package repository

import (
	"time"

	"competency_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

const attemptWithQuestionQuery = `
SELECT uq.*, q.question_description, q.question_type
FROM user_questions uq
JOIN questions q ON uq.question_id = q.id
`

func (r *AttemptRepository) findAttempts(where string, args ...interface{}) ([]model.AttemptWithQuestion, error) {
	var attempts []model.AttemptWithQuestion
	err := r.DB.Raw(attemptWithQuestionQuery+where+`
ORDER BY uq.attempt_time DESC`, args...).Scan(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return r.findAttempts(`WHERE uq.user_id = ?`, userID)
}

func (r *AttemptRepository) FindByUserAndQuestion(userID, questionID uint) ([]model.AttemptWithQuestion, error) {
	return r.findAttempts(`WHERE uq.user_id = ? AND uq.question_id = ?`, userID, questionID)
}

func (r *AttemptRepository) FindCorrectByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return r.findAttempts(`WHERE uq.user_id = ? AND uq.is_correct = 1`, userID)
}

func (r *AttemptRepository) FindIncorrectByUser(userID uint) ([]model.AttemptWithQuestion, error) {
	return r.findAttempts(`WHERE uq.user_id = ? AND uq.is_correct = 0`, userID)
}

// Record 只追加写入；未带时间时由本层以秒级精度盖服务器时间戳
func (r *AttemptRepository) Record(attempt *model.UserQuestion) (int64, error) {
	if attempt.AttemptTime.IsZero() {
		attempt.AttemptTime = time.Now().Truncate(time.Second)
	}
	res := r.DB.Create(attempt)
	return res.RowsAffected, res.Error
}
