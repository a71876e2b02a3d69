package model

// ProgressSummary 用户在单个能力域上的进度汇总
// Accuracy 在没有任何作答时为 NULL，序列化为 JSON null
type ProgressSummary struct {
	CompetencyName     string   `json:"competencyName"`
	CompetencyCode     string   `json:"competencyCode"`
	SkillRank          int      `json:"skillRank"`
	QuestionsAttempted int      `json:"questionsAttempted"`
	CorrectAnswers     int      `json:"correctAnswers"`
	Accuracy           *float64 `json:"accuracy"`
}

// CompetencyStatistics 能力域聚合统计
// 无技能/题目/排位时仍返回一行，聚合值为零或 NULL
type CompetencyStatistics struct {
	CompetencyName   string   `json:"competencyName"`
	TotalSkills      int      `json:"totalSkills"`
	TotalQuestions   int      `json:"totalQuestions"`
	UsersWithRanking int      `json:"usersWithRanking"`
	AverageRanking   *float64 `json:"averageRanking"`
	MinRanking       *int     `json:"minRanking"`
	MaxRanking       *int     `json:"maxRanking"`
}
