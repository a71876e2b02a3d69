package controller

import (
	"errors"

	"competency_backend/internal/service"
	"competency_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(s *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: s}
}

// @Summary 用户学习进度汇总
// @Description 按能力与技能维度汇总答题数、答对数和正确率
// @Tags 统计
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.ProgressSummary}
// @Router /users/{id}/progress-summary [get]
func (c *AnalyticsController) UserProgressSummary(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	summary, err := c.Service.UserProgressSummary(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, summary, len(summary))
}

// @Summary 能力统计
// @Description 统计能力下的技能数、题目数、参与用户数和段位分布
// @Tags 统计
// @Produce json
// @Param id path int true "能力ID"
// @Success 200 {object} util.Response{data=model.CompetencyStatistics}
// @Failure 404 {object} util.Response
// @Router /competencies/{id}/statistics [get]
func (c *AnalyticsController) CompetencyStatistics(ctx *gin.Context) {
	competencyID := util.MustParseUint(ctx.Param("id"))

	stats, err := c.Service.CompetencyStatistics(competencyID)
	if errors.Is(err, util.ErrCompetencyNotFound) {
		util.NotFound(ctx, "Competency not found")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
