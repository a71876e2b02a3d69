package util

import "errors"

var (
	ErrCompetencyNotFound = errors.New("competency not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRankingNotFound    = errors.New("skill ranking not found")
	ErrDuplicateUserName  = errors.New("username already exists")
	ErrInvalidAttemptTime = errors.New("invalid attempt_time, expected format 2006-01-02 15:04:05")
)
