package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

const skillWithCompetencyQuery = `
SELECT s.*, c.competency_name, c.competency_code
FROM skills s
JOIN competencies c ON s.competency_id = c.id
`

func (r *SkillRepository) FindByCompetency(competencyID uint) ([]model.SkillWithCompetency, error) {
	var skills []model.SkillWithCompetency
	err := r.DB.Raw(skillWithCompetencyQuery+`
WHERE s.competency_id = ?
ORDER BY s.start_mmr`, competencyID).Scan(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindByCompetencyCode(code string) ([]model.SkillWithCompetency, error) {
	var skills []model.SkillWithCompetency
	err := r.DB.Raw(skillWithCompetencyQuery+`
WHERE c.competency_code = ?
ORDER BY s.start_mmr`, code).Scan(&skills).Error
	return skills, err
}

// FindByMMRRange 区间重叠判定：技能区间 [start_mmr, end_mmr] 与
// 查询区间 [minMMR, maxMMR] 有交集即命中
func (r *SkillRepository) FindByMMRRange(minMMR, maxMMR int) ([]model.SkillWithCompetency, error) {
	var skills []model.SkillWithCompetency
	err := r.DB.Raw(skillWithCompetencyQuery+`
WHERE s.start_mmr <= ? AND s.end_mmr >= ?
ORDER BY s.start_mmr`, maxMMR, minMMR).Scan(&skills).Error
	return skills, err
}

func (r *SkillRepository) Create(skill *model.Skill) (int64, error) {
	res := r.DB.Create(skill)
	return res.RowsAffected, res.Error
}
