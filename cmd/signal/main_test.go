package main

import (
	"os"
	"path/filepath"
	"testing"

	"webhook_bot/internal/modules/config"
	"webhook_bot/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewLogger_ReadyBeforeConstructors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "signal.log")
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.File = file
	t.Cleanup(func() { _ = logger.Init(logger.Config{Level: "info"}) })

	app := fx.New(
		fx.Supply(cfg),
		fx.WithLogger(newLogger),
		fx.Invoke(func(*config.Config) {
			logger.Warn("[TELEGRAM] token/chat not set")
		}),
	)
	require.NoError(t, app.Err())
	logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), "[TELEGRAM] token/chat not set")
}
