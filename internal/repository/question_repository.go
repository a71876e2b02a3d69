package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByType(questionType string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("question_type = ?", questionType).Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindBySkill(skillID uint) ([]model.QuestionWithSkill, error) {
	var questions []model.QuestionWithSkill
	err := r.DB.Raw(`
SELECT q.*, s.short_description AS skill_description, c.competency_name
FROM questions q
JOIN question_skills qs ON q.id = qs.question_id
JOIN skills s ON qs.skill_id = s.id
JOIN competencies c ON s.competency_id = c.id
WHERE qs.skill_id = ?`, skillID).Scan(&questions).Error
	return questions, err
}

// FindByCompetency 按题目去重：一道题挂在同一能力域的多个技能下时只出现一次
func (r *QuestionRepository) FindByCompetency(competencyID uint) ([]model.QuestionWithSkill, error) {
	var questions []model.QuestionWithSkill
	err := r.DB.Raw(`
SELECT q.*, MIN(s.short_description) AS skill_description, c.competency_name
FROM questions q
JOIN question_skills qs ON q.id = qs.question_id
JOIN skills s ON qs.skill_id = s.id
JOIN competencies c ON s.competency_id = c.id
WHERE c.id = ?
GROUP BY q.id, c.competency_name
ORDER BY q.id`, competencyID).Scan(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Create(question *model.Question) (int64, error) {
	res := r.DB.Create(question)
	return res.RowsAffected, res.Error
}

// LinkToSkill 幂等关联：已存在时不报错也不重复插入，影响行数为 0
func (r *QuestionRepository) LinkToSkill(questionID, skillID uint) (int64, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.QuestionSkill{
		QuestionID: questionID,
		SkillID:    skillID,
	})
	return res.RowsAffected, res.Error
}
