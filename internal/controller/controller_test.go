package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"competency_backend/internal/model"
	"competency_backend/internal/repository"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/pkg/database"
	pkglogger "competency_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pkglogger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	competency := NewCompetencyController(service.NewCompetencyService(repository.NewCompetencyRepository(db)))
	skill := NewSkillController(service.NewSkillService(repository.NewSkillRepository(db)))
	question := NewQuestionController(service.NewQuestionService(repository.NewQuestionRepository(db)))
	user := NewUserController(service.NewUserService(repository.NewUserRepository(db)))
	attempt := NewAttemptController(service.NewAttemptService(repository.NewAttemptRepository(db)))
	ranking := NewRankingController(service.NewRankingService(repository.NewRankingRepository(db)))
	analytics := NewAnalyticsController(service.NewAnalyticsService(repository.NewAnalyticsRepository(db)))
	health := NewHealthController(db)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/health", health.HealthCheck)
	api.GET("/competencies", competency.List)
	api.POST("/competencies", competency.Add)
	api.GET("/competencies/:id", competency.GetByCode)
	api.GET("/competencies/:id/statistics", analytics.CompetencyStatistics)
	api.POST("/competencies/:id/skills", skill.Add)
	api.GET("/skills/mmr-range", skill.ListByMMRRange)
	api.POST("/questions", question.Add)
	api.POST("/questions/:id/skills/:skillId", question.LinkToSkill)
	api.POST("/users", user.Add)
	api.GET("/users/:id", user.GetByID)
	api.POST("/users/:id/attempts", attempt.Record)
	api.PUT("/users/:id/competencies/:competencyId/skill-ranking", ranking.Upsert)
	api.GET("/users/:id/competencies/:competencyId/skill-ranking", ranking.Get)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
}

func TestAddCompetencyValidation(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/competencies", gin.H{
		"competency_name": "Modellieren",
		"domain_code":     "M",
		"domain_name":     "Mathematik",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
	if resp.Error != "Missing required field: competency_code" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestAddAndListCompetencies(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/competencies", gin.H{
		"competency_code": "E8",
		"competency_name": "Modellieren",
		"domain_code":     "M",
		"domain_name":     "Mathematik",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", w.Code)
	}
	if resp.Message != "Competency added successfully" {
		t.Fatalf("got message %q", resp.Message)
	}

	w, resp = doJSON(t, router, http.MethodGet, "/api/competencies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if resp.Count == nil || *resp.Count != 1 {
		t.Fatalf("got count %v, want 1", resp.Count)
	}
}

func TestGetCompetencyByCodeNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/competencies/XX", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if resp.Error != "Competency not found" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestAddUserDuplicateConflict(t *testing.T) {
	router, _ := setupRouter(t)

	body := gin.H{"username": "alice"}
	w, _ := doJSON(t, router, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: got status %d", w.Code)
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("second create: got status %d, want 409", w.Code)
	}
	if resp.Error != "Username already exists" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/users/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if resp.Error != "User not found" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestRecordAttemptInvalidTime(t *testing.T) {
	router, db := setupRouter(t)

	if err := db.Create(&model.User{UserName: "alice"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/users/1/attempts", gin.H{
		"question_id":  1,
		"user_answer":  "4",
		"is_correct":   true,
		"attempt_time": "03/01/2025 10:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if resp.Error != "Attempt time must use format YYYY-MM-DD HH:MM:SS" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestSkillRankingUpsertRoundtrip(t *testing.T) {
	router, db := setupRouter(t)

	if err := db.Create(&model.User{UserName: "alice"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&model.Competency{
		CompetencyCode: "E8",
		CompetencyName: "Modellieren",
		DomainCode:     "M",
		DomainName:     "Mathematik",
	}).Error; err != nil {
		t.Fatalf("seed competency: %v", err)
	}

	w, _ := doJSON(t, router, http.MethodPut, "/api/users/1/competencies/1/skill-ranking", gin.H{"skill_rank": 1200})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: got status %d", w.Code)
	}

	w, resp := doJSON(t, router, http.MethodGet, "/api/users/1/competencies/1/skill-ranking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: got status %d", w.Code)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if data["skillRank"] != float64(1200) {
		t.Fatalf("got skillRank %v, want 1200", data["skillRank"])
	}
}

func TestAddSkillUnderCompetency(t *testing.T) {
	router, db := setupRouter(t)

	if err := db.Create(&model.Competency{
		CompetencyCode: "E8",
		CompetencyName: "Modellieren",
		DomainCode:     "M",
		DomainName:     "Mathematik",
	}).Error; err != nil {
		t.Fatalf("seed competency: %v", err)
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/competencies/1/skills", gin.H{
		"stage":             "HS",
		"short_description": "Daten erfassen",
		"start_mmr":         300,
		"end_mmr":           200,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if resp.Error != "Start MMR must be less than or equal to End MMR" {
		t.Fatalf("got error %q", resp.Error)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/competencies/1/skills", gin.H{
		"stage":             "HS",
		"short_description": "Daten erfassen",
		"start_mmr":         0,
		"end_mmr":           100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", w.Code)
	}

	var skill model.Skill
	if err := db.First(&skill).Error; err != nil {
		t.Fatalf("skill not stored: %v", err)
	}
	if skill.CompetencyID != 1 {
		t.Fatalf("got competency id %d, want 1 (from path)", skill.CompetencyID)
	}
}

func TestMMRRangeRequiresBothParams(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/skills/mmr-range?min_mmr=100", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if resp.Error != "Both min_mmr and max_mmr parameters are required" {
		t.Fatalf("got error %q", resp.Error)
	}
}

func TestLinkQuestionToSkill(t *testing.T) {
	router, db := setupRouter(t)

	if err := db.Create(&model.Competency{
		CompetencyCode: "E8",
		CompetencyName: "Modellieren",
		DomainCode:     "M",
		DomainName:     "Mathematik",
	}).Error; err != nil {
		t.Fatalf("seed competency: %v", err)
	}
	if err := db.Create(&model.Skill{CompetencyID: 1, Stage: "HS", ShortDescription: "s", StartMMR: 0, EndMMR: 100}).Error; err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	if err := db.Create(&model.Question{
		QuestionType:        model.QuestionTypeMCQ,
		QuestionDescription: "q",
		QuestionsAnswer:     "a",
	}).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/questions/1/skills/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if resp.Message != "Question linked to skill successfully" {
		t.Fatalf("got message %q", resp.Message)
	}
}
