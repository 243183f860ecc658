package notify

import (
	"context"

	"webhook_bot/pkg/logger"
)

// Stdout пишет уведомления в лог, когда Telegram не настроен.
type Stdout struct{}

func NewStdout() *Stdout { return &Stdout{} }

func (s *Stdout) Send(_ context.Context, text string) error {
	logger.Info("[NOTIFY] %s", text)
	return nil
}
