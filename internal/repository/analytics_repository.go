package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// UserProgressSummary 用户有排位的每个能力域一行。
// 作答数通过用户全部答题记录宽松关联，未严格限定在该能力域的技能内；
// 没有任何作答时除法无定义，accuracy 为 NULL。
func (r *AnalyticsRepository) UserProgressSummary(userID uint) ([]model.ProgressSummary, error) {
	var summaries []model.ProgressSummary
	err := r.DB.Raw(`
SELECT
    c.competency_name,
    c.competency_code,
    us.skill_rank,
    COUNT(DISTINCT uq.question_id) AS questions_attempted,
    SUM(CASE WHEN uq.is_correct = 1 THEN 1 ELSE 0 END) AS correct_answers,
    ROUND(SUM(CASE WHEN uq.is_correct = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(DISTINCT uq.question_id), 2) AS accuracy
FROM user_skills us
JOIN competencies c ON us.competency_id = c.id
LEFT JOIN user_questions uq ON us.user_id = uq.user_id
LEFT JOIN question_skills qs ON uq.question_id = qs.question_id
LEFT JOIN skills s ON qs.skill_id = s.id AND s.competency_id = c.id
WHERE us.user_id = ?
GROUP BY c.id, c.competency_name, c.competency_code, us.skill_rank
ORDER BY us.skill_rank DESC`, userID).Scan(&summaries).Error
	return summaries, err
}

// CompetencyStatistics 左连接聚合：没有技能/题目/排位的能力域
// 仍返回一行，聚合列为零或 NULL；能力域不存在时返回 ErrRecordNotFound
func (r *AnalyticsRepository) CompetencyStatistics(competencyID uint) (*model.CompetencyStatistics, error) {
	var stats model.CompetencyStatistics
	res := r.DB.Raw(`
SELECT
    c.competency_name,
    COUNT(DISTINCT s.id) AS total_skills,
    COUNT(DISTINCT q.id) AS total_questions,
    COUNT(DISTINCT us.user_id) AS users_with_ranking,
    AVG(us.skill_rank) AS average_ranking,
    MIN(us.skill_rank) AS min_ranking,
    MAX(us.skill_rank) AS max_ranking
FROM competencies c
LEFT JOIN skills s ON c.id = s.competency_id
LEFT JOIN question_skills qs ON s.id = qs.skill_id
LEFT JOIN questions q ON qs.question_id = q.id
LEFT JOIN user_skills us ON c.id = us.competency_id
WHERE c.id = ?
GROUP BY c.id, c.competency_name`, competencyID).Scan(&stats)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &stats, nil
}
