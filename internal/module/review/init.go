package review

import (
	"log/slog"

	"community-funding-system/internal/global/logger"
)

var log *slog.Logger

type ModuleReview struct{}

func (r *ModuleReview) GetName() string {
	return "Review"
}

func (r *ModuleReview) Init() {
	log = logger.New("Review")
}
