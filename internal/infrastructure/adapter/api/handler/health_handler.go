package handler

import (
	"net/http"

	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger checks the backing store connection
type Pinger interface {
	Ping() error
}

// HealthHandler reports service liveness
type HealthHandler struct {
	pinger Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(pinger Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
		logger: logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response := dto.HealthResponse{Status: "ok", Database: "ok"}

	if err := h.pinger.Ping(); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		response.Status = "degraded"
		response.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
