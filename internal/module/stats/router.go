package stats

import (
	"community-funding-system/internal/global/middleware"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	statsGroup.Use(middleware.Auth())
	{
		// 申请人看板
		statsGroup.GET("/user", UserStatsHandler)

		// 投资人看板
		statsGroup.GET("/investor", InvestorStatsHandler)
	}

	reviewerGroup := r.Group("/stats")
	reviewerGroup.Use(middleware.Auth(model.RoleReviewer))
	{
		// 审核人看板
		reviewerGroup.GET("/reviewer", ReviewerStatsHandler)

		// 当月审核记录报表导出
		reviewerGroup.GET("/reviewer/export", ExportReviewerReport)
	}
}
