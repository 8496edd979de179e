package investment_test

import (
	"sync"
	"testing"
	"time"

	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"
	"community-funding-system/internal/module/investment"
	"community-funding-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProject(t *testing.T, db *gorm.DB, status model.ProjectStatus, goal float64) *model.Project {
	t.Helper()
	p := &model.Project{
		UserID:          "owner-1",
		Title:           "社区图书角",
		Description:     "为社区儿童建设图书角",
		Category:        "education",
		RequestedAmount: goal,
		Timeline:        "3个月",
		Status:          status,
		Priority:        model.PriorityMedium,
		SubmittedAt:     time.Now(),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestGetFundingStatusNoInvestments(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	status, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, status.Total)
	require.Equal(t, 1000.0, status.Goal)
}

func TestGetFundingStatusIdempotent(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	_, err := investment.RecordInvestment(db, "inv-1", p.ID, 123.45)
	require.NoError(t, err)

	first, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	second, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGetFundingStatusNotFound(t *testing.T) {
	db := test.NewDB(t)

	_, err := investment.GetFundingStatus(db, 999)
	require.ErrorIs(t, err, response.ErrNotFound)
}

// 分两笔投满目标：第一笔后仍是 approved，第二笔触发 funded
func TestFundingThresholdTransition(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	_, err := investment.RecordInvestment(db, "inv-1", p.ID, 600)
	require.NoError(t, err)

	status, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 600.0, status.Total)

	var reloaded model.Project
	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, model.StatusApproved, reloaded.Status)

	_, err = investment.RecordInvestment(db, "inv-2", p.ID, 400)
	require.NoError(t, err)

	status, err = investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1000.0, status.Total)

	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, model.StatusFunded, reloaded.Status)
}

// 超额投资正常入账，状态迁移只发生一次
func TestOverfunding(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	_, err := investment.RecordInvestment(db, "inv-1", p.ID, 1500)
	require.NoError(t, err)

	status, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1500.0, status.Total)

	var reloaded model.Project
	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, model.StatusFunded, reloaded.Status)

	// 满额之后继续投资：入账但不再迁移
	_, err = investment.RecordInvestment(db, "inv-2", p.ID, 100)
	require.NoError(t, err)

	status, err = investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1600.0, status.Total)

	var fundedNotices int64
	require.NoError(t, db.Model(&model.Notification{}).
		Where("title = ?", "项目筹款达标").
		Count(&fundedNotices).Error)
	require.Equal(t, int64(1), fundedNotices)
}

func TestRecordInvestmentValidation(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	_, err := investment.RecordInvestment(db, "inv-1", p.ID, 0)
	require.ErrorIs(t, err, response.ErrInvalidRequest)

	_, err = investment.RecordInvestment(db, "inv-1", p.ID, -10)
	require.ErrorIs(t, err, response.ErrInvalidRequest)

	_, err = investment.RecordInvestment(db, "inv-1", 999, 100)
	require.ErrorIs(t, err, response.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Investment{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

// 未过审的项目不接受投资
func TestRecordInvestmentStatusGuard(t *testing.T) {
	db := test.NewDB(t)

	for _, status := range []model.ProjectStatus{
		model.StatusPending,
		model.StatusRejected,
		model.StatusCompleted,
	} {
		p := newProject(t, db, status, 1000)
		_, err := investment.RecordInvestment(db, "inv-1", p.ID, 100)
		require.ErrorIs(t, err, response.ErrConflict, "status %s", status)
	}
}

// 投资金额按两位小数入账，总额与逐笔算术和一致
func TestFundingTotalPrecision(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	amounts := []float64{10.10, 20.25, 0.01, 33.33}
	var want float64
	for i, a := range amounts {
		_, err := investment.RecordInvestment(db, "inv-1", p.ID, a)
		require.NoError(t, err, "amount %d", i)
		want += a
	}

	status, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.InDelta(t, want, status.Total, 0.001)

	var rows []model.Investment
	require.NoError(t, db.Where("project_id = ?", p.ID).Find(&rows).Error)
	var manual float64
	for _, r := range rows {
		manual += r.Amount
	}
	require.InDelta(t, manual, status.Total, 0.001)
}

// 并发投资刚好投满目标时，funded 迁移恰好发生一次
func TestConcurrentThresholdCrossing(t *testing.T) {
	db := test.NewDB(t)
	p := newProject(t, db, model.StatusApproved, 1000)

	const workers = 4
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = investment.RecordInvestment(db, "inv-1", p.ID, 250)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	status, err := investment.GetFundingStatus(db, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1000.0, status.Total)

	var reloaded model.Project
	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, model.StatusFunded, reloaded.Status)

	// 达标通知恰好一条，说明迁移没有重复也没有丢失
	var fundedNotices int64
	require.NoError(t, db.Model(&model.Notification{}).
		Where("title = ?", "项目筹款达标").
		Count(&fundedNotices).Error)
	require.Equal(t, int64(1), fundedNotices)
}
