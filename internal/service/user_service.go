package service

import (
	"errors"

	"competency_backend/internal/model"
	"competency_backend/internal/repository"
	"competency_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List() ([]model.User, error) {
	return s.Repo.FindAll()
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) GetByName(username string) (*model.User, error) {
	user, err := s.Repo.FindByName(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// Add 用户名冲突映射为领域错误，由控制器返回 409
func (s *UserService) Add(req *model.CreateUserRequest) (int64, error) {
	rows, err := s.Repo.Create(&model.User{UserName: *req.UserName})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, util.ErrDuplicateUserName
	}
	return rows, err
}
