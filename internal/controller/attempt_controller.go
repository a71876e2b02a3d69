package controller

import (
	"errors"

	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(s *service.AttemptService) *AttemptController {
	return &AttemptController{Service: s}
}

// @Summary 获取用户全部答题记录
// @Description 按答题时间倒序返回
// @Tags 答题记录
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.AttemptWithQuestion}
// @Router /users/{id}/attempts [get]
func (c *AttemptController) ListByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	attempts, err := c.Service.ListByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, attempts, len(attempts))
}

// @Summary 获取用户某题的答题记录
// @Tags 答题记录
// @Produce json
// @Param id path int true "用户ID"
// @Param questionId path int true "题目ID"
// @Success 200 {object} util.Response{data=[]model.AttemptWithQuestion}
// @Router /users/{id}/questions/{questionId}/attempts [get]
func (c *AttemptController) ListByUserAndQuestion(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	questionID := util.MustParseUint(ctx.Param("questionId"))

	attempts, err := c.Service.ListByUserAndQuestion(userID, questionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, attempts, len(attempts))
}

// @Summary 获取用户答对的记录
// @Tags 答题记录
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.AttemptWithQuestion}
// @Router /users/{id}/attempts/correct [get]
func (c *AttemptController) ListCorrectByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	attempts, err := c.Service.ListCorrectByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, attempts, len(attempts))
}

// @Summary 获取用户答错的记录
// @Tags 答题记录
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.AttemptWithQuestion}
// @Router /users/{id}/attempts/incorrect [get]
func (c *AttemptController) ListIncorrectByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	attempts, err := c.Service.ListIncorrectByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, attempts, len(attempts))
}

// @Summary 记录一次答题
// @Description 记录只追加不修改,未提供 attempt_time 时由服务端打时间戳
// @Tags 答题记录
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param body body model.RecordAttemptRequest true "答题信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /users/{id}/attempts [post]
func (c *AttemptController) Record(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	var req model.RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := validation.ValidateAttempt(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Record(userID, &req)
	if errors.Is(err, util.ErrInvalidAttemptTime) {
		util.BadRequest(ctx, "Attempt time must use format YYYY-MM-DD HH:MM:SS")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "Attempt recorded successfully", gin.H{"rowsAffected": rows})
}
