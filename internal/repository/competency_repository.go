package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
)

type CompetencyRepository struct {
	DB *gorm.DB
}

func NewCompetencyRepository(db *gorm.DB) *CompetencyRepository {
	return &CompetencyRepository{DB: db}
}

func (r *CompetencyRepository) FindAll() ([]model.Competency, error) {
	var competencies []model.Competency
	err := r.DB.Order("competency_code, domain_code").Find(&competencies).Error
	return competencies, err
}

// FindByCode 编码不保证唯一，可能返回多行；空结果由调用方判定为未找到
func (r *CompetencyRepository) FindByCode(code string) ([]model.Competency, error) {
	var competencies []model.Competency
	err := r.DB.Where("competency_code = ?", code).Find(&competencies).Error
	return competencies, err
}

func (r *CompetencyRepository) Create(competency *model.Competency) (int64, error) {
	res := r.DB.Create(competency)
	return res.RowsAffected, res.Error
}
