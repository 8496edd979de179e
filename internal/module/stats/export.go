package stats

import (
	"fmt"
	"net/url"
	"time"

	"community-funding-system/internal/global/context"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/response"
	"community-funding-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reviewReportRow 月度审核报表的一行
type reviewReportRow struct {
	ProjectTitle string
	Decision     model.ReviewDecision
	Comments     string
	ReviewedAt   time.Time
}

// BuildReviewerMonthlyReport 生成某审核人当月审核记录的 Excel 报表
func BuildReviewerMonthlyReport(db *gorm.DB, reviewerID string, now time.Time) (*excelize.File, error) {
	var rows []reviewReportRow
	if err := db.Model(&model.Review{}).
		Select("project.title AS project_title, review.decision, review.comments, review.reviewed_at").
		Joins("JOIN project ON project.id = review.project_id").
		Where("review.reviewer_id = ? AND review.reviewed_at >= ?", reviewerID, monthStartUTC(now)).
		Order("review.reviewed_at").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "审核记录"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"项目标题", "审核结论", "审核意见", "审核时间"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.ProjectTitle,
			string(row.Decision),
			row.Comments,
			row.ReviewedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportReviewerReport 下载当月审核记录报表
func ExportReviewerReport(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	f, err := BuildReviewerMonthlyReport(database.DB, payload.UserID, time.Now())
	if err != nil {
		log.Error("生成审核报表失败", "error", err, "reviewer_id", payload.UserID)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	fileName := fmt.Sprintf("review-report-%s.xlsx", time.Now().UTC().Format("200601"))
	escaped := url.QueryEscape(fileName)
	c.Header("Content-Type", excelContentType)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))

	if err := f.Write(c.Writer); err != nil {
		log.Error("写出审核报表失败", "error", err, "reviewer_id", payload.UserID)
	}
}
