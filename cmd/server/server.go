package server

import (
	"context"
	"fmt"
	"log/slog"

	"community-funding-system/config"
	"community-funding-system/internal/global/cache"
	"community-funding-system/internal/global/database"
	"community-funding-system/internal/global/httpclient"
	"community-funding-system/internal/global/logger"
	"community-funding-system/internal/global/middleware"
	internalOtel "community-funding-system/internal/global/otel"
	internalSentry "community-funding-system/internal/global/sentry"
	"community-funding-system/internal/module"
	"community-funding-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	internalSentry.Init()

	database.Init()

	cache.Init()

	httpclient.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if internalSentry.IsEnabled() {
		r.Use(internalSentry.Middleware())
	}

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer func() {
		if config.Get().OTel.Enable {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("关闭 TracerProvider 失败", "error", err)
			}
		}
	}()

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
