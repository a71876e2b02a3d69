package model

// QuestionSkill 题目与技能的多对多关联，重复插入按无操作处理
type QuestionSkill struct {
	QuestionID uint `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	SkillID    uint `gorm:"primaryKey;autoIncrement:false" json:"skillId"`
}

func (QuestionSkill) TableName() string {
	return "question_skills"
}
