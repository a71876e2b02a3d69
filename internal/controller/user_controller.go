package controller

import (
	"errors"

	"competency_backend/internal/model"
	"competency_backend/internal/service"
	"competency_backend/internal/util"
	"competency_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{Service: s}
}

// @Summary 获取全部用户
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithCount(ctx, users, len(users))
}

// @Summary 按ID获取用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	user, err := c.Service.GetByID(id)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 按用户名获取用户
// @Tags 用户
// @Produce json
// @Param name path string true "用户名"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /users/name/{name} [get]
func (c *UserController) GetByName(ctx *gin.Context) {
	user, err := c.Service.GetByName(ctx.Param("name"))
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 新增用户
// @Description 用户名重复时返回 409
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body model.CreateUserRequest true "用户信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /users [post]
func (c *UserController) Add(ctx *gin.Context) {
	var req model.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := validation.ValidateUser(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rows, err := c.Service.Add(&req)
	if errors.Is(err, util.ErrDuplicateUserName) {
		util.Conflict(ctx, "Username already exists")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, "User added successfully", gin.H{"rowsAffected": rows})
}
