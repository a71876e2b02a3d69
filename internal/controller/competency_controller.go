package controller

import (
	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type CompetencyController struct {
	Service *service.CompetencyService
}

func NewCompetencyController(s *service.CompetencyService) *CompetencyController {
	return &CompetencyController{Service: s}
}

// @Summary 获取全部能力域
// @Tags 能力域
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Competency}
// @Router /competencies [get]
func (c *CompetencyController) List(ctx *gin.Context) {
	competencies, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, competencies, len(competencies))
}

// @Summary 按编码查询能力域
// @Description 编码不唯一，可能返回多行
// @Tags 能力域
// @Produce json
// @Param code path string true "能力域编码"
// @Success 200 {object} util.Response{data=[]model.Competency}
// @Failure 404 {object} util.Response
// @Router /competencies/{code} [get]
func (c *CompetencyController) GetByCode(ctx *gin.Context) {
	code := ctx.Param("id")

	competencies, err := c.Service.GetByCode(code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(competencies) == 0 {
		util.NotFound(ctx, "Competency not found")
		return
	}
	util.Success(ctx, competencies)
}

// @Summary 新增能力域
// @Tags 能力域
// @Accept json
// @Produce json
// @Param body body model.CreateCompetencyRequest true "能力域信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /competencies [post]
func (c *CompetencyController) Add(ctx *gin.Context) {
	var req model.CreateCompetencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := validation.ValidateCompetency(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Add(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "Competency added successfully", gin.H{"rowsAffected": rows})
}
