// Package validation 对写入请求做纯函数校验，不触达存储，
// 全部在数据访问调用之前执行。
package validation

import (
	"errors"
	"fmt"
	"strings"

	"competency_backend/internal/model"
)

func missing(field string) error {
	return fmt.Errorf("Missing required field: %s", field)
}

func nonEmpty(field string, value *string) error {
	if value == nil {
		return missing(field)
	}
	if strings.TrimSpace(*value) == "" {
		return fmt.Errorf("Field %s must be a non-empty string", field)
	}
	return nil
}

// ValidateCompetency 校验能力域创建请求
func ValidateCompetency(req *model.CreateCompetencyRequest) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"competency_code", req.CompetencyCode},
		{"competency_name", req.CompetencyName},
		{"domain_code", req.DomainCode},
		{"domain_name", req.DomainName},
	}
	for _, f := range fields {
		if err := nonEmpty(f.name, f.value); err != nil {
			return err
		}
	}

	if len(*req.CompetencyCode) > 10 {
		return errors.New("Competency code must be 10 characters or less")
	}
	if len(*req.CompetencyName) > 100 {
		return errors.New("Competency name must be 100 characters or less")
	}
	return nil
}

// ValidateSkill 校验技能创建请求，含 MMR 区间约束
func ValidateSkill(req *model.CreateSkillRequest) error {
	if req.CompetencyID == nil {
		return missing("competency_id")
	}
	if req.Stage == nil {
		return missing("stage")
	}
	if req.ShortDescription == nil {
		return missing("short_description")
	}
	if req.StartMMR == nil {
		return missing("start_mmr")
	}
	if req.EndMMR == nil {
		return missing("end_mmr")
	}

	if *req.CompetencyID <= 0 {
		return errors.New("Competency ID must be a positive integer")
	}
	if strings.TrimSpace(*req.Stage) == "" {
		return errors.New("Stage must be a non-empty string")
	}
	if strings.TrimSpace(*req.ShortDescription) == "" {
		return errors.New("Short description must be a non-empty string")
	}
	if len(*req.ShortDescription) > 200 {
		return errors.New("Short description must be 200 characters or less")
	}
	if *req.StartMMR < 0 {
		return errors.New("Start MMR must be a non-negative integer")
	}
	if *req.EndMMR < 0 {
		return errors.New("End MMR must be a non-negative integer")
	}
	if *req.StartMMR > *req.EndMMR {
		return errors.New("Start MMR must be less than or equal to End MMR")
	}
	return nil
}

// ValidateQuestion 校验题目创建请求，题型做大小写敏感的精确匹配
func ValidateQuestion(req *model.CreateQuestionRequest) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"question_type", req.QuestionType},
		{"question_description", req.QuestionDescription},
		{"questions_answer", req.QuestionsAnswer},
	}
	for _, f := range fields {
		if err := nonEmpty(f.name, f.value); err != nil {
			return err
		}
	}

	for _, t := range model.ValidQuestionTypes {
		if *req.QuestionType == t {
			return nil
		}
	}
	return fmt.Errorf("Question type must be one of: %s", strings.Join(model.ValidQuestionTypes, ", "))
}

// ValidateUser 校验用户创建请求
func ValidateUser(req *model.CreateUserRequest) error {
	if req.UserName == nil {
		return missing("username")
	}
	if strings.TrimSpace(*req.UserName) == "" {
		return errors.New("Username must be a non-empty string")
	}
	if len(*req.UserName) > 50 {
		return errors.New("Username must be 50 characters or less")
	}
	return nil
}

// ValidateAttempt 校验答题记录请求，user_answer 允许为空字符串
func ValidateAttempt(req *model.RecordAttemptRequest) error {
	if req.QuestionID == nil {
		return missing("question_id")
	}
	if req.UserAnswer == nil {
		return missing("user_answer")
	}
	if req.IsCorrect == nil {
		return missing("is_correct")
	}
	if *req.QuestionID <= 0 {
		return errors.New("Question ID must be a positive integer")
	}
	return nil
}

// ValidateSkillRanking 校验排位更新请求
func ValidateSkillRanking(req *model.UpdateSkillRankingRequest) error {
	if req.SkillRank == nil {
		return missing("skill_rank")
	}
	if *req.SkillRank < 0 {
		return errors.New("Skill rank must be a non-negative integer")
	}
	return nil
}
