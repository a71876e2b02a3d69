package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("user_name").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByName(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("user_name = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 用户名重复时返回 gorm.ErrDuplicatedKey（TranslateError 开启）
func (r *UserRepository) Create(user *model.User) (int64, error) {
	res := r.DB.Create(user)
	return res.RowsAffected, res.Error
}
