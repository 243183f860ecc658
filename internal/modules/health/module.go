package health

import (
	"context"
	"net/http"

	"webhook_bot/internal/modules/health/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

func RegisterRoutes(r *gin.Engine, state *service.State) {
	r.GET("/livez", func(c *gin.Context) {
		// liveness: процесс жив
		c.String(http.StatusOK, "ok")
	})

	r.GET("/readyz", func(c *gin.Context) {
		// readiness: сервер слушает порт
		if !state.Ready() {
			c.String(http.StatusServiceUnavailable, "not ready")
			return
		}
		c.String(http.StatusOK, "ready")
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":      state.Ready(),
			"uptimeSec":  int64(state.Uptime().Seconds()),
			"handled":    state.Handled(),
			"errors":     state.Errors(),
			"lastStatus": state.LastStatus(),
			"lastSignalUnix": func() int64 {
				t := state.LastSignal()
				if t.IsZero() {
					return 0
				}
				return t.Unix()
			}(),
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func Module() fx.Option {
	return fx.Module("health",
		fx.Provide(
			service.NewState,
		),
		fx.Invoke(RegisterRoutes),
		fx.Invoke(func(lc fx.Lifecycle, state *service.State) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					state.SetReady(true)
					return nil
				},
				OnStop: func(context.Context) error {
					state.SetReady(false)
					return nil
				},
			})
		}),
	)
}
