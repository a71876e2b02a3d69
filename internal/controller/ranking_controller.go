package controller

import (
	"errors"
	"strconv"

	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	Service *service.RankingService
}

func NewRankingController(s *service.RankingService) *RankingController {
	return &RankingController{Service: s}
}

// @Summary 获取用户全部能力段位
// @Description 按段位从高到低返回
// @Tags 段位
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.RankingWithCompetency}
// @Router /users/{id}/skill-rankings [get]
func (c *RankingController) ListByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	rankings, err := c.Service.ListByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, rankings, len(rankings))
}

// @Summary 获取用户在某能力下的段位
// @Tags 段位
// @Produce json
// @Param id path int true "用户ID"
// @Param competencyId path int true "能力ID"
// @Success 200 {object} util.Response{data=model.RankingWithCompetency}
// @Failure 404 {object} util.Response
// @Router /users/{id}/competencies/{competencyId}/skill-ranking [get]
func (c *RankingController) Get(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	competencyID := util.MustParseUint(ctx.Param("competencyId"))

	ranking, err := c.Service.Get(userID, competencyID)
	if errors.Is(err, util.ErrRankingNotFound) {
		util.NotFound(ctx, "Skill ranking not found")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ranking)
}

// @Summary 设置用户在某能力下的段位
// @Description 不存在则插入,存在则覆盖
// @Tags 段位
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param competencyId path int true "能力ID"
// @Param body body model.UpdateSkillRankingRequest true "段位信息"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /users/{id}/competencies/{competencyId}/skill-ranking [put]
func (c *RankingController) Upsert(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	competencyID := util.MustParseUint(ctx.Param("competencyId"))

	var req model.UpdateSkillRankingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := validation.ValidateSkillRanking(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Upsert(userID, competencyID, *req.SkillRank)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Skill ranking updated successfully", gin.H{"rowsAffected": rows})
}

// @Summary 获取某能力下的用户及段位
// @Description 可选 min_rank、max_rank 过滤区间,按段位从高到低返回
// @Tags 段位
// @Produce json
// @Param id path int true "能力ID"
// @Param min_rank query int false "最低段位"
// @Param max_rank query int false "最高段位"
// @Success 200 {object} util.Response{data=[]model.RankedUser}
// @Failure 400 {object} util.Response
// @Router /competencies/{id}/users [get]
func (c *RankingController) ListUsersByCompetency(ctx *gin.Context) {
	competencyID := util.MustParseUint(ctx.Param("id"))

	minRank, err := optionalIntQuery(ctx, "min_rank")
	if err != nil {
		util.BadRequest(ctx, "min_rank must be an integer")
		return
	}
	maxRank, err := optionalIntQuery(ctx, "max_rank")
	if err != nil {
		util.BadRequest(ctx, "max_rank must be an integer")
		return
	}

	users, err := c.Service.ListUsersByCompetency(competencyID, minRank, maxRank)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, users, len(users))
}

func optionalIntQuery(ctx *gin.Context, name string) (*int, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
