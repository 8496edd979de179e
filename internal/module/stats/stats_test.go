package stats_test

import (
	"testing"
	"time"

	"community-funding-system/internal/model"
	"community-funding-system/internal/module/stats"
	"community-funding-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProject(t *testing.T, db *gorm.DB, userID, category string, status model.ProjectStatus, submittedAt time.Time) *model.Project {
	t.Helper()
	p := &model.Project{
		UserID:          userID,
		Title:           "项目-" + category,
		Description:     "描述",
		Category:        category,
		RequestedAmount: 1000,
		Timeline:        "3个月",
		Status:          status,
		Priority:        model.PriorityMedium,
		SubmittedAt:     submittedAt,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestUserStats(t *testing.T) {
	db := test.NewDB(t)
	now := time.Now()

	seedProject(t, db, "u1", "education", model.StatusPending, now)
	seedProject(t, db, "u1", "education", model.StatusApproved, now)
	seedProject(t, db, "u1", "health", model.StatusFunded, now)
	seedProject(t, db, "u1", "health", model.StatusRejected, now)
	seedProject(t, db, "u2", "health", model.StatusPending, now)

	result, err := stats.UserStats(db, "u1")
	require.NoError(t, err)
	require.Equal(t, int64(4), result.TotalApplications)
	require.Equal(t, int64(1), result.PendingApplications)
	require.Equal(t, int64(1), result.ApprovedApplications)
	require.Equal(t, int64(1), result.FundedApplications)
}

func TestUserStatsUnknownUser(t *testing.T) {
	db := test.NewDB(t)

	result, err := stats.UserStats(db, "nobody")
	require.NoError(t, err)
	require.Equal(t, int64(0), result.TotalApplications)
	require.Equal(t, int64(0), result.PendingApplications)
}

func TestReviewerStats(t *testing.T) {
	db := test.NewDB(t)
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	seedProject(t, db, "u1", "education", model.StatusPending, now.AddDate(0, 0, -3))
	seedProject(t, db, "u2", "health", model.StatusPending, now.AddDate(0, 0, -2))

	// 当月一条通过、一条拒绝，上月一条通过（不计入）
	p1 := seedProject(t, db, "u1", "education", model.StatusApproved, now.AddDate(0, 0, -10))
	p2 := seedProject(t, db, "u2", "health", model.StatusRejected, now.AddDate(0, 0, -8))
	p3 := seedProject(t, db, "u3", "health", model.StatusApproved, now.AddDate(0, -1, -10))

	require.NoError(t, db.Create(&model.Review{
		ProjectID: p1.ID, ReviewerID: "r1",
		Decision: model.DecisionApproved, ReviewedAt: now.AddDate(0, 0, -8),
	}).Error)
	require.NoError(t, db.Create(&model.Review{
		ProjectID: p2.ID, ReviewerID: "r1",
		Decision: model.DecisionRejected, ReviewedAt: now.AddDate(0, 0, -6),
	}).Error)
	require.NoError(t, db.Create(&model.Review{
		ProjectID: p3.ID, ReviewerID: "r1",
		Decision: model.DecisionApproved, ReviewedAt: now.AddDate(0, -1, -8),
	}).Error)

	result, err := stats.ReviewerStats(db, "r1", now)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.PendingReviews)
	require.Equal(t, int64(1), result.ApprovedThisMonth)
	require.Equal(t, int64(1), result.RejectedThisMonth)
	require.Greater(t, result.AvgReviewDays, 0.0)
}

// 待审数是全局队列，和查询哪个审核人无关
func TestReviewerStatsGlobalPendingQueue(t *testing.T) {
	db := test.NewDB(t)
	now := time.Now()

	seedProject(t, db, "u1", "education", model.StatusPending, now)
	seedProject(t, db, "u2", "health", model.StatusPending, now)
	seedProject(t, db, "u3", "health", model.StatusApproved, now)

	first, err := stats.ReviewerStats(db, "r1", now)
	require.NoError(t, err)
	second, err := stats.ReviewerStats(db, "r2", now)
	require.NoError(t, err)

	require.Equal(t, int64(2), first.PendingReviews)
	require.Equal(t, first.PendingReviews, second.PendingReviews)
}

func TestInvestorStats(t *testing.T) {
	db := test.NewDB(t)
	now := time.Now()

	funded1 := seedProject(t, db, "u1", "education", model.StatusFunded, now)
	funded2 := seedProject(t, db, "u2", "health", model.StatusFunded, now)
	approved := seedProject(t, db, "u3", "health", model.StatusApproved, now)
	seedProject(t, db, "u4", "arts", model.StatusApproved, now)

	invest := func(investorID string, projectID uint, amount float64) {
		require.NoError(t, db.Create(&model.Investment{
			ProjectID: projectID, InvestorID: investorID,
			Amount: amount, InvestedAt: now,
		}).Error)
	}

	invest("i1", funded1.ID, 300)
	invest("i1", funded1.ID, 200)
	invest("i1", funded2.ID, 500)
	invest("i1", approved.ID, 50)
	invest("i2", funded2.ID, 100)

	result, err := stats.InvestorStats(db, "i1")
	require.NoError(t, err)
	require.Equal(t, 1050.0, result.TotalInvested)
	// funded1 投了两笔也只算一个活跃项目
	require.Equal(t, int64(2), result.ActiveProjects)
	require.Equal(t, int64(2), result.AvailableProjects)
	require.Equal(t, int64(2), result.CategoriesImpacted)
}

// 首笔投资后看板立即反映总额
func TestInvestorStatsFirstInvestment(t *testing.T) {
	db := test.NewDB(t)
	p := seedProject(t, db, "u1", "education", model.StatusApproved, time.Now())

	require.NoError(t, db.Create(&model.Investment{
		ProjectID: p.ID, InvestorID: "i1",
		Amount: 50.00, InvestedAt: time.Now(),
	}).Error)

	result, err := stats.InvestorStats(db, "i1")
	require.NoError(t, err)
	require.Equal(t, 50.0, result.TotalInvested)
}

func TestInvestorStatsUnknownUser(t *testing.T) {
	db := test.NewDB(t)

	result, err := stats.InvestorStats(db, "nobody")
	require.NoError(t, err)
	require.Equal(t, 0.0, result.TotalInvested)
	require.Equal(t, int64(0), result.ActiveProjects)
}
