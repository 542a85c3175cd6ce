package controllers

import (
	"github.com/gin-gonic/gin"

	"go-riegopanel/client"
	"go-riegopanel/models"
	"go-riegopanel/utils"
)

// UserController 处理用户管理相关的请求（仅管理员）
type UserController struct {
	API *client.Client
}

// NewUserController 创建一个新的UserController实例
func NewUserController(api *client.Client) *UserController {
	return &UserController{API: api}
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"required,oneof=ADMIN OPERARIO"`
}

// ListUsers 获取用户列表
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.API.ListUsers(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, users)
}

// CreateUser 创建用户
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	user := models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Active:   true,
	}
	created, err := c.API.CreateUser(ctx.Request.Context(), bearerToken(ctx), user, req.Password)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Created(ctx, created)
}

// UpdateUser 更新用户资料或角色
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	user.ID = id
	updated, err := c.API.UpdateUser(ctx.Request.Context(), bearerToken(ctx), user)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, updated)
}

// DeleteUser 停用用户
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	if err := c.API.DeleteUser(ctx.Request.Context(), bearerToken(ctx), id); err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.NoContent(ctx)
}
