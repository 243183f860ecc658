package webhook

import (
	"context"
	"crypto/subtle"
	"io"
	"net/http"
	"time"

	"webhook_bot/internal/models"
	"webhook_bot/internal/modules/health/service"
	"webhook_bot/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

const maxBody = 64 << 10

// SignalHandler: то, что обрабатывает разобранный сигнал.
type SignalHandler interface {
	HandleSignal(ctx context.Context, sig models.Signal) models.Result
}

type payload struct {
	Symbol     string `json:"symbol"`
	Side       string `json:"side"`
	Passphrase string `json:"passphrase"`
}

type Handler struct {
	runner SignalHandler
	state  *service.State
	secret string
}

func NewHandler(runner SignalHandler, state *service.State, secret string) *Handler {
	return &Handler{runner: runner, state: state, secret: secret}
}

// Handle принимает тело как JSON независимо от Content-Type:
// алерты часто приходят с text/plain.
func (h *Handler) Handle(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "reason": "read body"})
		return
	}

	var p payload
	if err := sonic.Unmarshal(raw, &p); err != nil {
		logger.Warn("[WEBHOOK] malformed body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "reason": "malformed json"})
		return
	}

	if h.secret != "" && subtle.ConstantTimeCompare([]byte(p.Passphrase), []byte(h.secret)) != 1 {
		logger.Warn("[WEBHOOK] bad passphrase from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "reason": "unauthorized"})
		return
	}

	sig := models.ParseSignal(p.Symbol, p.Side)
	logger.Info("[WEBHOOK] symbol=%s side=%q", sig.Symbol, p.Side)

	// пайплайн не обрывается при отключении клиента
	res := h.runner.HandleSignal(context.WithoutCancel(c.Request.Context()), sig)

	if h.state != nil {
		h.state.TouchSignal(time.Now(), res.Status)
	}
	c.JSON(http.StatusOK, res)
}
