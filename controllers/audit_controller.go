package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go-riegopanel/client"
	"go-riegopanel/utils"
)

// AuditController 处理审计历史和月度报表的请求（仅管理员）
type AuditController struct {
	API *client.Client
}

// NewAuditController 创建一个新的AuditController实例
func NewAuditController(api *client.Client) *AuditController {
	return &AuditController{API: api}
}

// History 分页获取审计历史
func (c *AuditController) History(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.BadRequest(ctx, "invalid page")
		return
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.BadRequest(ctx, "invalid pageSize")
		return
	}

	result, err := c.API.ListAudit(ctx.Request.Context(), bearerToken(ctx), page, pageSize)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.SuccessWithPagination(ctx, result.Entries, result.TotalCount, page, pageSize)
}

// MonthlyReport 获取某农场的月度报表
func (c *AuditController) MonthlyReport(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		utils.BadRequest(ctx, "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.BadRequest(ctx, "invalid month")
		return
	}

	report, err := c.API.MonthlyReport(ctx.Request.Context(), bearerToken(ctx), farmID, year, month)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, report)
}
