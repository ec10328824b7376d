package handler

import (
	"net/http"

	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ServiceVersion is reported by the index and health endpoints
const ServiceVersion = "1.0.0"

// IndexHandler serves the root URL service document
type IndexHandler struct{}

// NewIndexHandler creates a new index handler instance
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Index handles GET / and describes the available operations
func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.IndexResponse{
		Name:    "Payment Methods service",
		Version: ServiceVersion,
		Routes: []dto.RouteInfo{
			{Path: "/payment-methods", Method: "GET", Operation: "Read", Description: "List payment methods, filterable by name, type and user_id"},
			{Path: "/payment-methods/:id", Method: "GET", Operation: "Read", Description: "Get one payment method"},
			{Path: "/payment-methods", Method: "POST", Operation: "Create", Description: "Create a payment method"},
			{Path: "/payment-methods/:id", Method: "PUT", Operation: "Update", Description: "Update a payment method"},
			{Path: "/payment-methods/:id", Method: "DELETE", Operation: "Delete", Description: "Delete a payment method"},
			{Path: "/payment-methods/:id/set-default", Method: "POST", Operation: "Update", Description: "Make a payment method the user's default"},
		},
	})
}
