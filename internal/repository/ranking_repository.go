package repository

import (
	"competency_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankingRepository struct {
	DB *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{DB: db}
}

const rankingWithCompetencyQuery = `
SELECT us.*, c.competency_name, c.competency_code
FROM user_skills us
JOIN competencies c ON us.competency_id = c.id
`

func (r *RankingRepository) FindByUser(userID uint) ([]model.RankingWithCompetency, error) {
	var rankings []model.RankingWithCompetency
	err := r.DB.Raw(rankingWithCompetencyQuery+`
WHERE us.user_id = ?
ORDER BY us.skill_rank DESC`, userID).Scan(&rankings).Error
	return rankings, err
}

func (r *RankingRepository) FindByUserAndCompetency(userID, competencyID uint) (*model.RankingWithCompetency, error) {
	var ranking model.RankingWithCompetency
	res := r.DB.Raw(rankingWithCompetencyQuery+`
WHERE us.user_id = ? AND us.competency_id = ?`, userID, competencyID).Scan(&ranking)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ranking, nil
}

// Upsert 按 (user_id, competency_id) 原子覆盖写入，
// 单条 ON CONFLICT DO UPDATE，并发读永远不会观察到中间的缺行状态
func (r *RankingRepository) Upsert(ranking *model.UserSkill) (int64, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "competency_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skill_rank"}),
	}).Create(ranking)
	return res.RowsAffected, res.Error
}

// FindUsersByCompetency 排位筛选为可选且可叠加：两个、其一或都不给
func (r *RankingRepository) FindUsersByCompetency(competencyID uint, minRank, maxRank *int) ([]model.RankedUser, error) {
	query := `
SELECT us.*, u.user_name, c.competency_name
FROM user_skills us
JOIN users u ON us.user_id = u.id
JOIN competencies c ON us.competency_id = c.id
WHERE us.competency_id = ?`
	args := []interface{}{competencyID}

	if minRank != nil {
		query += ` AND us.skill_rank >= ?`
		args = append(args, *minRank)
	}
	if maxRank != nil {
		query += ` AND us.skill_rank <= ?`
		args = append(args, *maxRank)
	}
	query += `
ORDER BY us.skill_rank DESC`

	var users []model.RankedUser
	err := r.DB.Raw(query, args...).Scan(&users).Error
	return users, err
}
