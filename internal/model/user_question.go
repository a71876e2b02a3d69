package model

import "time"

// UserQuestion 答题记录，只追加不更新，同一用户同一题可多次作答
type UserQuestion struct {
	UserID      uint      `gorm:"not null;index:idx_user_questions_user_question" json:"userId"`
	QuestionID  uint      `gorm:"not null;index:idx_user_questions_user_question" json:"questionId"`
	UserAnswer  string    `gorm:"type:text" json:"userAnswer"`
	IsCorrect   bool      `gorm:"not null" json:"isCorrect"`
	AttemptTime time.Time `gorm:"not null;index" json:"attemptTime"`
}

func (UserQuestion) TableName() string {
	return "user_questions"
}

// AttemptWithQuestion 答题记录连同题面与题型
type AttemptWithQuestion struct {
	UserQuestion
	QuestionDescription string `json:"questionDescription"`
	QuestionType        string `json:"questionType"`
}
