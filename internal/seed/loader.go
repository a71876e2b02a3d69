package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"competency_backend/internal/model"
	"competency_backend/internal/util"
	"competency_backend/pkg/database"
	"competency_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 每张表对应一个种子文件，命名沿用导出表格的文件名
const (
	FileCompetency    = "DB tables - Competency.csv"
	FileSkill         = "DB tables - Skill.csv"
	FileQuestions     = "DB tables - Questions.csv"
	FileQuestionSkill = "DB tables - QuestionSkill.csv"
	FileUser          = "DB tables - User.csv"
	FileUserQuestions = "DB tables - UserQuestions.csv"
	FileUserSkill     = "DB tables - UserSkill.csv"
)

// Loader 一次性装载工具：删表重建后按依赖序批量导入种子数据。
// 具有破坏性，仅用于初始化或测试夹具，绝不能挂到服务路径上。
type Loader struct {
	DB     *gorm.DB
	Source Source
}

func NewLoader(db *gorm.DB, source Source) *Loader {
	return &Loader{DB: db, Source: source}
}

// Run 失败时直接报错返回，库处于"已重建、部分装载"状态
func (l *Loader) Run(ctx context.Context) error {
	if err := l.Reset(); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}

	// 外键依赖序：先主表后关联表
	steps := []struct {
		file string
		load func(ctx context.Context, rows []record) error
	}{
		{FileCompetency, l.loadCompetencies},
		{FileSkill, l.loadSkills},
		{FileQuestions, l.loadQuestions},
		{FileQuestionSkill, l.loadQuestionSkills},
		{FileUser, l.loadUsers},
		{FileUserQuestions, l.loadUserQuestions},
		{FileUserSkill, l.loadUserSkills},
	}

	for _, step := range steps {
		rows, err := l.readCSV(ctx, step.file)
		if err != nil {
			logger.Log.Warn("Seed file not available, skipping", zap.String("file", step.file), zap.Error(err))
			continue
		}
		if err := step.load(ctx, rows); err != nil {
			return fmt.Errorf("load %s: %w", step.file, err)
		}
		logger.Log.Info("Seed file loaded", zap.String("file", step.file), zap.Int("rows", len(rows)))
	}

	return nil
}

// Reset 删掉全部表后重新建表
func (l *Loader) Reset() error {
	err := l.DB.Migrator().DropTable(
		&model.UserSkill{},
		&model.UserQuestion{},
		&model.QuestionSkill{},
		&model.User{},
		&model.Question{},
		&model.Skill{},
		&model.Competency{},
	)
	if err != nil {
		return err
	}
	return database.Migrate(l.DB)
}

// record 一行 CSV，按表头列名取值
type record map[string]string

func (r record) uintField(key string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(r[key]), 10, 32)
	return uint(v), err
}

func (r record) intField(key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r[key]))
}

// boolField 将 "TRUE"/"FALSE" 文本归一化为布尔
func (r record) boolField(key string) bool {
	return strings.EqualFold(strings.TrimSpace(r[key]), "TRUE")
}

func (r record) timeField(key string) (time.Time, error) {
	return time.ParseInLocation(util.TimeFormat, strings.TrimSpace(r[key]), time.Local)
}

func (l *Loader) readCSV(ctx context.Context, name string) ([]record, error) {
	f, err := l.Source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	var rows []record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(record, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Loader) loadCompetencies(ctx context.Context, rows []record) error {
	competencies := make([]model.Competency, 0, len(rows))
	for _, row := range rows {
		id, err := row.uintField("Id")
		if err != nil {
			return err
		}
		competencies = append(competencies, model.Competency{
			ID:             id,
			CompetencyCode: row["CompetencyCode"],
			CompetencyName: row["CompetencyName"],
			DomainCode:     row["DomainCode"],
			DomainName:     row["DomainName"],
			Description:    row["Description"],
		})
	}
	if len(competencies) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&competencies).Error
}

func (l *Loader) loadSkills(ctx context.Context, rows []record) error {
	skills := make([]model.Skill, 0, len(rows))
	for _, row := range rows {
		id, err := row.uintField("Id")
		if err != nil {
			return err
		}
		competencyID, err := row.uintField("CompetencyId")
		if err != nil {
			return err
		}
		startMMR, err := row.intField("StartMMR")
		if err != nil {
			return err
		}
		endMMR, err := row.intField("EndMMR")
		if err != nil {
			return err
		}
		skills = append(skills, model.Skill{
			ID:               id,
			CompetencyID:     competencyID,
			Stage:            row["Stage"],
			ShortDescription: row["ShortDescription"],
			Description:      row["Description"],
			StartMMR:         startMMR,
			EndMMR:           endMMR,
		})
	}
	if len(skills) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&skills).Error
}

func (l *Loader) loadQuestions(ctx context.Context, rows []record) error {
	questions := make([]model.Question, 0, len(rows))
	for _, row := range rows {
		id, err := row.uintField("Id")
		if err != nil {
			return err
		}
		questions = append(questions, model.Question{
			ID:                  id,
			QuestionType:        row["QuestionType"],
			QuestionDescription: row["QuestionDescription"],
			Options:             row["Options"],
			QuestionsAnswer:     row["QuestionsAnswer"],
			QuestionHint:        row["QuestionHint"],
		})
	}
	if len(questions) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&questions).Error
}

func (l *Loader) loadQuestionSkills(ctx context.Context, rows []record) error {
	links := make([]model.QuestionSkill, 0, len(rows))
	for _, row := range rows {
		questionID, err := row.uintField("QuestionId")
		if err != nil {
			return err
		}
		skillID, err := row.uintField("SkillId")
		if err != nil {
			return err
		}
		links = append(links, model.QuestionSkill{QuestionID: questionID, SkillID: skillID})
	}
	if len(links) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&links).Error
}

func (l *Loader) loadUsers(ctx context.Context, rows []record) error {
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		id, err := row.uintField("Id")
		if err != nil {
			return err
		}
		users = append(users, model.User{ID: id, UserName: row["UserName"]})
	}
	if len(users) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&users).Error
}

func (l *Loader) loadUserQuestions(ctx context.Context, rows []record) error {
	attempts := make([]model.UserQuestion, 0, len(rows))
	for _, row := range rows {
		userID, err := row.uintField("UserId")
		if err != nil {
			return err
		}
		questionID, err := row.uintField("QuestionId")
		if err != nil {
			return err
		}
		attemptTime, err := row.timeField("AttemptTime")
		if err != nil {
			return err
		}
		attempts = append(attempts, model.UserQuestion{
			UserID:      userID,
			QuestionID:  questionID,
			UserAnswer:  row["UserAnswer"],
			IsCorrect:   row.boolField("IsCorrect"),
			AttemptTime: attemptTime,
		})
	}
	if len(attempts) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&attempts).Error
}

func (l *Loader) loadUserSkills(ctx context.Context, rows []record) error {
	rankings := make([]model.UserSkill, 0, len(rows))
	for _, row := range rows {
		userID, err := row.uintField("UserId")
		if err != nil {
			return err
		}
		competencyID, err := row.uintField("CompetencyId")
		if err != nil {
			return err
		}
		skillRank, err := row.intField("SkillRank")
		if err != nil {
			return err
		}
		rankings = append(rankings, model.UserSkill{
			UserID:       userID,
			CompetencyID: competencyID,
			SkillRank:    skillRank,
		})
	}
	if len(rankings) == 0 {
		return nil
	}
	return l.DB.WithContext(ctx).Create(&rankings).Error
}
