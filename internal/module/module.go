package module

import (
	"community-funding-system/internal/module/investment"
	"community-funding-system/internal/module/notification"
	"community-funding-system/internal/module/ping"
	"community-funding-system/internal/module/project"
	"community-funding-system/internal/module/review"
	"community-funding-system/internal/module/stats"
	"community-funding-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&project.ModuleProject{},
		&review.ModuleReview{},
		&investment.ModuleInvestment{},
		&stats.ModuleStats{},
		&notification.ModuleNotification{},
	})
}
