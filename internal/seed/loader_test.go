package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"competency_backend/internal/model"
	"competency_backend/pkg/database"
	pkglogger "competency_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testLoader(t *testing.T, dir string) (*Loader, *gorm.DB) {
	t.Helper()
	pkglogger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewLoader(db, &LocalSource{Dir: dir}), db
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoaderRun(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, FileCompetency,
		"Id,CompetencyCode,CompetencyName,DomainCode,DomainName,Description\n"+
			"1,E8,Modellieren,M,Mathematik,Beschreibung\n")
	writeSeedFile(t, dir, FileSkill,
		"Id,CompetencyId,Stage,ShortDescription,Description,StartMMR,EndMMR\n"+
			"1,1,HS,Daten erfassen,Lang,0,100\n")
	writeSeedFile(t, dir, FileQuestions,
		"Id,QuestionType,QuestionDescription,Options,QuestionsAnswer,QuestionHint\n"+
			"1,MCQ,Was ist 2+2?,\"2;3;4;5\",4,Addiere\n")
	writeSeedFile(t, dir, FileQuestionSkill,
		"QuestionId,SkillId\n1,1\n")
	writeSeedFile(t, dir, FileUser,
		"Id,UserName\n1,alice\n")
	writeSeedFile(t, dir, FileUserQuestions,
		"UserId,QuestionId,UserAnswer,IsCorrect,AttemptTime\n"+
			"1,1,4,TRUE,2025-03-01 10:00:00\n"+
			"1,1,3,FALSE,2025-03-01 10:05:00\n")
	writeSeedFile(t, dir, FileUserSkill,
		"UserId,CompetencyId,SkillRank\n1,1,1200\n")

	loader, db := testLoader(t, dir)
	if err := loader.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var competency model.Competency
	if err := db.First(&competency, 1).Error; err != nil {
		t.Fatalf("competency not loaded: %v", err)
	}
	if competency.CompetencyCode != "E8" {
		t.Fatalf("got code %q", competency.CompetencyCode)
	}

	var attempts []model.UserQuestion
	if err := db.Order("attempt_time").Find(&attempts).Error; err != nil {
		t.Fatalf("attempts not loaded: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	// TRUE/FALSE 文本归一化
	if !attempts[0].IsCorrect || attempts[1].IsCorrect {
		t.Fatalf("bool normalization failed: %+v", attempts)
	}

	var ranking model.UserSkill
	if err := db.First(&ranking).Error; err != nil {
		t.Fatalf("ranking not loaded: %v", err)
	}
	if ranking.SkillRank != 1200 {
		t.Fatalf("got rank %d", ranking.SkillRank)
	}
}

func TestLoaderSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, FileCompetency,
		"Id,CompetencyCode,CompetencyName,DomainCode,DomainName,Description\n"+
			"1,E8,Modellieren,M,Mathematik,\n")

	loader, db := testLoader(t, dir)
	if err := loader.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var count int64
	if err := db.Model(&model.Competency{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d competencies, want 1", count)
	}
}

func TestLoaderResetClearsExistingRows(t *testing.T) {
	dir := t.TempDir()
	loader, db := testLoader(t, dir)

	if err := db.Create(&model.User{UserName: "stale"}).Error; err != nil {
		t.Fatalf("seed stale user: %v", err)
	}
	if err := loader.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("got %d users after reset, want 0", count)
	}
}

func TestBoolFieldNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"TRUE", true},
		{"true", true},
		{"True", true},
		{" TRUE ", true},
		{"FALSE", false},
		{"false", false},
		{"", false},
		{"1", false},
	}
	for _, c := range cases {
		r := record{"IsCorrect": c.raw}
		if got := r.boolField("IsCorrect"); got != c.want {
			t.Fatalf("boolField(%q)=%v, want %v", c.raw, got, c.want)
		}
	}
}
