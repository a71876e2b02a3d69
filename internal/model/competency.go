package model

// Competency 顶层能力域，例如 "Language Comprehension"
// CompetencyCode 作为查询键使用，但不保证唯一，同一编码可能对应多行
type Competency struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompetencyCode string `gorm:"size:10;not null" json:"competencyCode"`
	CompetencyName string `gorm:"size:100;not null" json:"competencyName"`
	DomainCode     string `gorm:"size:10;not null" json:"domainCode"`
	DomainName     string `gorm:"size:100;not null" json:"domainName"`
	Description    string `gorm:"type:text" json:"description"`
}

func (Competency) TableName() string {
	return "competencies"
}
