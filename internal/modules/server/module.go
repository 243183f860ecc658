package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"webhook_bot/internal/modules/config"
	"webhook_bot/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func NewEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), accessLog())
	return r
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("[HTTP] %s %s → %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(started))
	}
}

func RunHTTP(lc fx.Lifecycle, cfg *config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("[HTTP] listening on %s", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("[HTTP] serve: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(NewEngine),
		fx.Invoke(RunHTTP),
	)
}
