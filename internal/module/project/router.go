package project

import (
	"community-funding-system/internal/global/middleware"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (p *ModuleProject) InitRouter(r *gin.RouterGroup) {
	projectGroup := r.Group("/project")

	projectGroup.Use(middleware.Auth())
	{
		// 查询我提交的项目
		projectGroup.GET("/mine", Mine)

		// 查询单个项目
		projectGroup.GET("/:id", GetByID)
	}

	applicantGroup := r.Group("/project")
	applicantGroup.Use(middleware.Auth(model.RoleApplicant))
	{
		// 提交新的筹款项目
		applicantGroup.POST("/submit", Submit)
	}

	reviewerGroup := r.Group("/project")
	reviewerGroup.Use(middleware.Auth(model.RoleReviewer))
	{
		// 审核队列：全部待审核项目
		reviewerGroup.GET("/pending", Pending)
	}

	investorGroup := r.Group("/project")
	investorGroup.Use(middleware.Auth(model.RoleInvestor))
	{
		// 可投资项目：已过审项目及其筹款进度
		investorGroup.GET("/approved", Approved)
	}
}
