package stats

import (
	"time"

	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// UserStatsHandler 申请人看板
func UserStatsHandler(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	result, err := UserStats(database.DB, payload.UserID)
	if err != nil {
		log.Error("查询用户统计失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, result)
}

// ReviewerStatsHandler 审核人看板
func ReviewerStatsHandler(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	result, err := ReviewerStats(database.DB, payload.UserID, time.Now())
	if err != nil {
		log.Error("查询审核统计失败", "error", err, "reviewer_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, result)
}

// InvestorStatsHandler 投资人看板
func InvestorStatsHandler(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	result, err := InvestorStats(database.DB, payload.UserID)
	if err != nil {
		log.Error("查询投资统计失败", "error", err, "investor_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, result)
}
