package model

// UserSkill 用户在某能力域上的当前排位，按 (user_id, competency_id) 覆盖写入
type UserSkill struct {
	UserID       uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	CompetencyID uint `gorm:"primaryKey;autoIncrement:false" json:"competencyId"`
	SkillRank    int  `gorm:"not null" json:"skillRank"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// RankingWithCompetency 排位连同能力域信息
type RankingWithCompetency struct {
	UserSkill
	CompetencyName string `json:"competencyName"`
	CompetencyCode string `json:"competencyCode"`
}

// RankedUser 某能力域下按排位排序的用户
type RankedUser struct {
	UserSkill
	UserName       string `json:"userName"`
	CompetencyName string `json:"competencyName"`
}
