package sentry

import (
	"community-funding-system/config"
	"community-funding-system/tools"

	sentrylib "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// IsEnabled 是否配置了 Sentry DSN
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

func Init() {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return
	}
	err := sentrylib.Init(sentrylib.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      string(cfg.Mode),
		EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	})
	tools.PanicOnErr(err)
}

// Middleware gin 集成，panic 自动上报并继续走业务 Recovery
func Middleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic: true,
	})
}
