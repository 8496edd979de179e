package investment

import (
	"strconv"

	"community-funding-system/internal/global/middleware"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (i *ModuleInvestment) InitRouter(r *gin.RouterGroup) {
	investmentGroup := r.Group("/investment")

	investmentGroup.Use(middleware.Auth())
	{
		// 查询项目筹款进度
		investmentGroup.GET("/funding/:id", FundingStatusHandler)
	}

	investorGroup := r.Group("/investment")
	investorGroup.Use(middleware.Auth(model.RoleInvestor))
	{
		// 投资已审核通过的项目
		investorGroup.POST("/invest", Invest)

		// 查询我的投资记录
		investorGroup.GET("/mine", MyInvestments)
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
