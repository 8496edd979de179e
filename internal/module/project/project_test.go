package project_test

import (
	"testing"
	"time"

	"community-funding-system/internal/global/jwt"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/investment"
	"community-funding-system/internal/module/project"
	"community-funding-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	(&project.ModuleProject{}).Init()
}

func applicantClaims(userID string) *jwt.Claims {
	return &jwt.Claims{Payload: jwt.Payload{UserID: userID, Role: model.RoleApplicant}}
}

func TestSubmitProject(t *testing.T) {
	db := test.SetupDB(t)

	resp := test.DoRequest(t, project.Submit, applicantClaims("u1"), project.SubmitProjectReq{
		Title:           "社区食堂",
		Description:     "为独居老人提供平价午餐",
		Category:        "community",
		RequestedAmount: 8000,
		Timeline:        "12个月",
	})
	test.NoError(t, resp)

	var created model.Project
	test.DecodeData(t, resp.Data, &created)
	require.Equal(t, model.StatusPending, created.Status)
	require.Equal(t, model.PriorityMedium, created.Priority)
	require.Equal(t, "u1", created.UserID)
	require.False(t, created.SubmittedAt.IsZero())

	// 提交成功后申请人收到通知
	var notices []model.Notification
	require.NoError(t, db.Where("user_id = ?", "u1").Find(&notices).Error)
	require.Len(t, notices, 1)
	require.Contains(t, notices[0].Message, "社区食堂")
}

func TestSubmitProjectValidation(t *testing.T) {
	test.SetupDB(t)

	// 缺少必填字段
	resp := test.DoRequest(t, project.Submit, applicantClaims("u1"), project.SubmitProjectReq{
		Title: "只有标题",
	})
	require.NotEqual(t, int32(200), resp.Code)

	// 目标金额必须为正
	resp = test.DoRequest(t, project.Submit, applicantClaims("u1"), map[string]any{
		"title":            "金额非法",
		"description":      "描述",
		"category":         "community",
		"requested_amount": -100,
		"timeline":         "3个月",
	})
	require.NotEqual(t, int32(200), resp.Code)
}

func seed(t *testing.T, db *gorm.DB, userID string, status model.ProjectStatus) *model.Project {
	t.Helper()
	p := &model.Project{
		UserID:          userID,
		Title:           "种子项目",
		Description:     "描述",
		Category:        "community",
		RequestedAmount: 1000,
		Timeline:        "3个月",
		Status:          status,
		Priority:        model.PriorityMedium,
		SubmittedAt:     time.Now(),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestMine(t *testing.T) {
	db := test.SetupDB(t)

	seed(t, db, "u1", model.StatusPending)
	seed(t, db, "u1", model.StatusApproved)
	seed(t, db, "u2", model.StatusPending)

	resp := test.DoRequest(t, project.Mine, applicantClaims("u1"), nil)
	test.NoError(t, resp)

	var projects []model.Project
	test.DecodeData(t, resp.Data, &projects)
	require.Len(t, projects, 2)
}

func TestPendingQueue(t *testing.T) {
	db := test.SetupDB(t)

	seed(t, db, "u1", model.StatusPending)
	seed(t, db, "u2", model.StatusPending)
	seed(t, db, "u3", model.StatusApproved)

	claims := &jwt.Claims{Payload: jwt.Payload{UserID: "r1", Role: model.RoleReviewer}}
	resp := test.DoRequest(t, project.Pending, claims, nil)
	test.NoError(t, resp)

	var projects []model.Project
	test.DecodeData(t, resp.Data, &projects)
	require.Len(t, projects, 2)
	for _, p := range projects {
		require.Equal(t, model.StatusPending, p.Status)
	}
}

// 可投资列表带各项目的筹款进度
func TestApprovedWithFunding(t *testing.T) {
	db := test.SetupDB(t)

	p := seed(t, db, "u1", model.StatusApproved)
	seed(t, db, "u2", model.StatusPending)

	_, err := investment.RecordInvestment(db, "i1", p.ID, 250)
	require.NoError(t, err)

	claims := &jwt.Claims{Payload: jwt.Payload{UserID: "i1", Role: model.RoleInvestor}}
	resp := test.DoRequest(t, project.Approved, claims, nil)
	test.NoError(t, resp)

	var projects []project.ProjectWithFunding
	test.DecodeData(t, resp.Data, &projects)
	require.Len(t, projects, 1)
	require.Equal(t, 250.0, projects[0].Funding.Total)
	require.Equal(t, 1000.0, projects[0].Funding.Goal)
}

func TestGetByID(t *testing.T) {
	db := test.SetupDB(t)
	p := seed(t, db, "u1", model.StatusPending)

	resp := test.DoRequest(t, project.GetByID, applicantClaims("u1"), nil,
		gin.Param{Key: "id", Value: "1"})
	test.NoError(t, resp)

	var got model.Project
	test.DecodeData(t, resp.Data, &got)
	require.Equal(t, p.ID, got.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, project.GetByID, applicantClaims("u1"), nil,
		gin.Param{Key: "id", Value: "999"})
	require.Equal(t, int32(404), resp.Code)
}
