package stats

import (
	"context"
	"strconv"

	"community-funding-system/internal/global/cache"
	"community-funding-system/internal/model"

	"gorm.io/gorm"
)

// globalStatusCount 全局按状态统计项目数，带 Redis 读穿缓存
// 缓存未启用或未命中时直接查库；看板允许短暂陈旧
func globalStatusCount(db *gorm.DB, status model.ProjectStatus) (int64, error) {
	ctx := context.Background()
	key := "stats:project_count:" + string(status)

	if val, ok := cache.GetString(ctx, key); ok {
		if count, err := strconv.ParseInt(val, 10, 64); err == nil {
			return count, nil
		}
	}

	var count int64
	if err := db.Model(&model.Project{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}

	cache.SetString(ctx, key, strconv.FormatInt(count, 10), cache.StatsTTL())

	return count, nil
}
