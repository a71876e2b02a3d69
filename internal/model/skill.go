package model

// Skill 能力域下按 MMR 区间分级的子技能
type Skill struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompetencyID     uint   `gorm:"not null;index" json:"competencyId"`
	Stage            string `gorm:"size:10;not null" json:"stage"`
	ShortDescription string `gorm:"size:200;not null" json:"shortDescription"`
	Description      string `gorm:"type:text" json:"description"`
	StartMMR         int    `gorm:"not null" json:"startMMR"`
	EndMMR           int    `gorm:"not null" json:"endMMR"`
}

func (Skill) TableName() string {
	return "skills"
}

// SkillWithCompetency 技能连同所属能力域的名称与编码
type SkillWithCompetency struct {
	Skill
	CompetencyName string `json:"competencyName"`
	CompetencyCode string `json:"competencyCode"`
}
