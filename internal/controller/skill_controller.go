package controller

import (
	"strconv"

	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	Service *service.SkillService
}

func NewSkillController(s *service.SkillService) *SkillController {
	return &SkillController{Service: s}
}

// @Summary 获取能力域下的全部技能
// @Tags 技能
// @Produce json
// @Param id path int true "能力域ID"
// @Success 200 {object} util.Response{data=[]model.SkillWithCompetency}
// @Router /competencies/{id}/skills [get]
func (c *SkillController) ListByCompetency(ctx *gin.Context) {
	competencyID := util.MustParseUint(ctx.Param("id"))

	skills, err := c.Service.ListByCompetency(competencyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, skills, len(skills))
}

// @Summary 按能力域编码获取技能
// @Tags 技能
// @Produce json
// @Param code path string true "能力域编码"
// @Success 200 {object} util.Response{data=[]model.SkillWithCompetency}
// @Router /competencies/code/{code}/skills [get]
func (c *SkillController) ListByCompetencyCode(ctx *gin.Context) {
	code := ctx.Param("code")

	skills, err := c.Service.ListByCompetencyCode(code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, skills, len(skills))
}

// @Summary 按 MMR 区间获取技能
// @Description 命中条件为技能区间与查询区间重叠
// @Tags 技能
// @Produce json
// @Param min_mmr query int true "区间下界"
// @Param max_mmr query int true "区间上界"
// @Success 200 {object} util.Response{data=[]model.SkillWithCompetency}
// @Failure 400 {object} util.Response
// @Router /skills/mmr-range [get]
func (c *SkillController) ListByMMRRange(ctx *gin.Context) {
	minMMR, errMin := strconv.Atoi(ctx.Query("min_mmr"))
	maxMMR, errMax := strconv.Atoi(ctx.Query("max_mmr"))
	if errMin != nil || errMax != nil {
		util.BadRequest(ctx, "Both min_mmr and max_mmr parameters are required")
		return
	}

	skills, err := c.Service.ListByMMRRange(minMMR, maxMMR)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, skills, len(skills))
}

// @Summary 新增技能
// @Tags 技能
// @Accept json
// @Produce json
// @Param id path int true "能力域ID"
// @Param body body model.CreateSkillRequest true "技能信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /competencies/{id}/skills [post]
func (c *SkillController) Add(ctx *gin.Context) {
	var req model.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 所属能力域取自路径，覆盖请求体里的值
	competencyID := int(util.MustParseUint(ctx.Param("id")))
	req.CompetencyID = &competencyID

	if err := validation.ValidateSkill(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Add(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "Skill added successfully", gin.H{"rowsAffected": rows})
}
