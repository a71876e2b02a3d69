package model

// 写入端点的请求体。字段用指针以区分"缺失"与"零值"，
// 校验层据此产出 Missing required field 类错误。

type CreateCompetencyRequest struct {
	CompetencyCode *string `json:"competency_code"`
	CompetencyName *string `json:"competency_name"`
	DomainCode     *string `json:"domain_code"`
	DomainName     *string `json:"domain_name"`
	Description    string  `json:"description"`
}

type CreateSkillRequest struct {
	CompetencyID     *int    `json:"competency_id"`
	Stage            *string `json:"stage"`
	ShortDescription *string `json:"short_description"`
	Description      string  `json:"description"`
	StartMMR         *int    `json:"start_mmr"`
	EndMMR           *int    `json:"end_mmr"`
}

type CreateQuestionRequest struct {
	QuestionType        *string `json:"question_type"`
	QuestionDescription *string `json:"question_description"`
	Options             string  `json:"options"`
	QuestionsAnswer     *string `json:"questions_answer"`
	QuestionHint        string  `json:"question_hint"`
}

type CreateUserRequest struct {
	UserName *string `json:"username"`
}

type RecordAttemptRequest struct {
	QuestionID  *int    `json:"question_id"`
	UserAnswer  *string `json:"user_answer"`
	IsCorrect   *bool   `json:"is_correct"`
	AttemptTime *string `json:"attempt_time"`
}

type UpdateSkillRankingRequest struct {
	SkillRank *int `json:"skill_rank"`
}
