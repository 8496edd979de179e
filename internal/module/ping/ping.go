package ping

import (
	"log/slog"

	"community-funding-system/internal/global/logger"
	"community-funding-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init() {
	log = logger.New("Ping")
}

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", Pong)
}

// Pong 健康检查
func Pong(c *gin.Context) {
	response.Success(c, "pong")
}
