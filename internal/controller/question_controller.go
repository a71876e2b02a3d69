package controller

import (
	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// @Summary 获取全部题目
// @Tags 题目
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, questions, len(questions))
}

// @Summary 按题型获取题目
// @Tags 题目
// @Produce json
// @Param type path string true "题型" Enums(MCQ, Integer, Text, Boolean)
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions/type/{type} [get]
func (c *QuestionController) ListByType(ctx *gin.Context) {
	questions, err := c.Service.ListByType(ctx.Param("type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, questions, len(questions))
}

// @Summary 获取技能关联的题目
// @Tags 题目
// @Produce json
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response{data=[]model.QuestionWithSkill}
// @Router /skills/{id}/questions [get]
func (c *QuestionController) ListBySkill(ctx *gin.Context) {
	skillID := util.MustParseUint(ctx.Param("id"))

	questions, err := c.Service.ListBySkill(skillID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, questions, len(questions))
}

// @Summary 获取能力域关联的题目
// @Description 同一道题挂在该能力域多个技能下时只出现一次
// @Tags 题目
// @Produce json
// @Param id path int true "能力域ID"
// @Success 200 {object} util.Response{data=[]model.QuestionWithSkill}
// @Router /competencies/{id}/questions [get]
func (c *QuestionController) ListByCompetency(ctx *gin.Context) {
	competencyID := util.MustParseUint(ctx.Param("id"))

	questions, err := c.Service.ListByCompetency(competencyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, questions, len(questions))
}

// @Summary 新增题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body model.CreateQuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Add(ctx *gin.Context) {
	var req model.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := validation.ValidateQuestion(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Add(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "Question added successfully", gin.H{"rowsAffected": rows})
}

// @Summary 关联题目与技能
// @Description 幂等操作，重复关联不报错，影响行数为 0
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Param skillId path int true "技能ID"
// @Success 200 {object} util.Response
// @Router /questions/{id}/skills/{skillId} [post]
func (c *QuestionController) LinkToSkill(ctx *gin.Context) {
	questionID := util.MustParseUint(ctx.Param("id"))
	skillID := util.MustParseUint(ctx.Param("skillId"))

	rows, err := c.Service.LinkToSkill(questionID, skillID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Question linked to skill successfully", gin.H{"rowsAffected": rows})
}
