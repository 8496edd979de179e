package investment

import (
	"log/slog"

	"community-funding-system/internal/global/logger"
)

var log *slog.Logger

type ModuleInvestment struct{}

func (i *ModuleInvestment) GetName() string {
	return "Investment"
}

func (i *ModuleInvestment) Init() {
	log = logger.New("Investment")
}
