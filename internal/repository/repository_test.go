package repository

import (
	"path/filepath"
	"testing"

	"competency_backend/internal/model"
	"competency_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB 在临时目录里建一个迁移完成的 sqlite 库
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCompetency(t *testing.T, db *gorm.DB, code, name string) uint {
	t.Helper()
	c := model.Competency{
		CompetencyCode: code,
		CompetencyName: name,
		DomainCode:     "D1",
		DomainName:     "Domain",
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed competency: %v", err)
	}
	return c.ID
}

func seedSkill(t *testing.T, db *gorm.DB, competencyID uint, desc string, startMMR, endMMR int) uint {
	t.Helper()
	s := model.Skill{
		CompetencyID:     competencyID,
		Stage:            "HS",
		ShortDescription: desc,
		StartMMR:         startMMR,
		EndMMR:           endMMR,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	return s.ID
}

func seedQuestion(t *testing.T, db *gorm.DB, description string) uint {
	t.Helper()
	q := model.Question{
		QuestionType:        model.QuestionTypeMCQ,
		QuestionDescription: description,
		QuestionsAnswer:     "42",
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q.ID
}

func seedUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	u := model.User{UserName: name}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}
