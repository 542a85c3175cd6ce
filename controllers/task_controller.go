package controllers

import (
	"github.com/gin-gonic/gin"

	"go-riegopanel/client"
	"go-riegopanel/models"
	"go-riegopanel/utils"
)

// TaskController 处理运维任务相关的请求
type TaskController struct {
	API *client.Client
}

// NewTaskController 创建一个新的TaskController实例
func NewTaskController(api *client.Client) *TaskController {
	return &TaskController{API: api}
}

// ListTasks 获取任务列表，可按 status 查询参数过滤
func (c *TaskController) ListTasks(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	tasks, err := c.API.ListTasks(ctx.Request.Context(), bearerToken(ctx), farmID, ctx.Query("status"))
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, tasks)
}

// CreateTask 创建任务
func (c *TaskController) CreateTask(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	var task models.Task
	if err := ctx.ShouldBindJSON(&task); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	task.FarmID = farmID
	created, err := c.API.CreateTask(ctx.Request.Context(), bearerToken(ctx), task)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Created(ctx, created)
}

// UpdateTask 更新任务
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	taskID, ok := pathID(ctx, "taskId")
	if !ok {
		return
	}
	var task models.Task
	if err := ctx.ShouldBindJSON(&task); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	task.FarmID = farmID
	task.ID = taskID
	updated, err := c.API.UpdateTask(ctx.Request.Context(), bearerToken(ctx), task)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, updated)
}

// CompleteTask 标记任务完成
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	taskID, ok := pathID(ctx, "taskId")
	if !ok {
		return
	}
	task, err := c.API.CompleteTask(ctx.Request.Context(), bearerToken(ctx), farmID, taskID)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, task)
}

// DeleteTask 删除任务
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	taskID, ok := pathID(ctx, "taskId")
	if !ok {
		return
	}
	if err := c.API.DeleteTask(ctx.Request.Context(), bearerToken(ctx), farmID, taskID); err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.NoContent(ctx)
}
