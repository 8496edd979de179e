package review

import (
	"strconv"

	"community-funding-system/internal/global/middleware"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (r *ModuleReview) InitRouter(router *gin.RouterGroup) {
	reviewGroup := router.Group("/review")

	reviewGroup.Use(middleware.Auth(model.RoleReviewer))
	{
		// 提交审核结论
		reviewGroup.POST("/submit", Submit)

		// 查询某项目的审核历史
		reviewGroup.GET("/project/:id", ListByProject)
	}
}

// projectIDParam 解析路径中的项目ID
func projectIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("项目ID格式错误"))
		return 0, false
	}
	return uint(id), true
}
