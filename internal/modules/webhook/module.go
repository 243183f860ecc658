package webhook

import (
	"webhook_bot/internal/modules/config"
	"webhook_bot/internal/modules/health/service"
	"webhook_bot/internal/runner"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("webhook",
		fx.Provide(
			func(r *runner.Runner, state *service.State, cfg *config.Config) *Handler {
				return NewHandler(r, state, cfg.Webhook.Secret)
			},
		),
		fx.Invoke(func(e *gin.Engine, h *Handler, cfg *config.Config) {
			e.POST(cfg.Webhook.Path, h.Handle)
		}),
	)
}
