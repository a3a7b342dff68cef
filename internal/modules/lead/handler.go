package lead

import (
	"errors"
	"net/http"

	"upravytelka/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/lead", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	failed, err := h.svc.Submit(c.Request.Context(), req)
	if len(failed) > 0 {
		response.FailFields(c, http.StatusBadRequest, "Validation failed", failed)
		return
	}
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Fail(c, http.StatusInternalServerError, "Telegram is not configured on the server")
			return
		}
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c)
}
