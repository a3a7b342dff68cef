package health

import (
	"net/http"

	"upravytelka/internal/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Status)
}

// Status is the liveness probe: reachability plus whether delivery is
// configured and which origins are accepted. No side effects.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":                 true,
		"status":             "up",
		"telegramConfigured": h.cfg.TelegramConfigured(),
		"allowedOrigins":     h.cfg.AllowedOrigins,
	})
}
