package model

// 题目类型，校验时做大小写敏感的精确匹配
const (
	QuestionTypeMCQ     = "MCQ"
	QuestionTypeInteger = "Integer"
	QuestionTypeText    = "Text"
	QuestionTypeBoolean = "Boolean"
)

var ValidQuestionTypes = []string{
	QuestionTypeMCQ,
	QuestionTypeInteger,
	QuestionTypeText,
	QuestionTypeBoolean,
}

// Question 题目，Options 为序列化后的选项文本（仅 MCQ 使用）
type Question struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionType        string `gorm:"size:20;not null" json:"questionType"`
	QuestionDescription string `gorm:"type:text;not null" json:"questionDescription"`
	Options             string `gorm:"type:text" json:"options"`
	QuestionsAnswer     string `gorm:"type:text;not null" json:"questionsAnswer"`
	QuestionHint        string `gorm:"type:text" json:"questionHint"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionWithSkill 题目连同关联技能与能力域信息
type QuestionWithSkill struct {
	Question
	SkillDescription string `json:"skillDescription"`
	CompetencyName   string `json:"competencyName"`
}
