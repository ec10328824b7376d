package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/paymentshop/payments-service/internal/domain/entity"
	domainerr "github.com/paymentshop/payments-service/internal/domain/error"
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
	"github.com/paymentshop/payments-service/internal/domain/port/usecase"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	useCase usecase.PaymentMethodUseCase
	logger  coreport.Logger
}

// NewPaymentMethodHandler creates a new payment method handler instance
func NewPaymentMethodHandler(useCase usecase.PaymentMethodUseCase, logger coreport.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// List handles GET /payment-methods with optional name, type and user_id
// query parameters that combine with logical AND
func (h *PaymentMethodHandler) List(c *gin.Context) {
	var filter persistence.Filter

	if name, ok := c.GetQuery("name"); ok {
		filter.Name = &name
	}
	if typeValue, ok := c.GetQuery("type"); ok {
		paymentType, err := entity.ParsePaymentType(typeValue)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, err, "Unrecognized payment type")
			return
		}
		filter.Type = &paymentType
	}
	if userIDValue, ok := c.GetQuery("user_id"); ok {
		userID, err := strconv.ParseUint(userIDValue, 10, 64)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, domainerr.ErrInvalidUserID, "Invalid user ID format")
			return
		}
		filter.UserID = &userID
	}

	methods, err := h.useCase.List(c.Request.Context(), filter)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	serialized := make([]map[string]any, 0, len(methods))
	for _, method := range methods {
		serialized = append(serialized, method.Serialize())
	}
	c.JSON(http.StatusOK, serialized)
}

// Get handles GET /payment-methods/:id
func (h *PaymentMethodHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	method, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, method.Serialize())
}

// Create handles POST /payment-methods. The type discriminator is checked
// here, before the core is invoked.
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	body, ok := h.jsonBody(c)
	if !ok {
		return
	}

	typeValue, ok := body["type"].(string)
	if !ok {
		h.respondError(c, http.StatusBadRequest, domainerr.ErrInvalidPaymentType, "Missing payment type")
		return
	}
	if _, err := entity.ParsePaymentType(typeValue); err != nil {
		h.respondError(c, http.StatusBadRequest, err, "Unrecognized payment type")
		return
	}

	method, err := h.useCase.Create(c.Request.Context(), body)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/payment-methods/%d", method.ID))
	c.JSON(http.StatusCreated, method.Serialize())
}

// Update handles PUT /payment-methods/:id
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	body, ok := h.jsonBody(c)
	if !ok {
		return
	}

	method, err := h.useCase.Update(c.Request.Context(), id, body)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, method.Serialize())
}

// Delete handles DELETE /payment-methods/:id. Deleting an id that does not
// exist returns no content as well, so the route is idempotent.
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		if !domainerr.IsNotFoundError(err) {
			h.respondDomainError(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// SetDefault handles POST /payment-methods/:id/set-default
func (h *PaymentMethodHandler) SetDefault(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var request dto.SetDefaultRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.respondError(c, http.StatusBadRequest, domainerr.ErrInvalidUserID, "Invalid or missing user_id")
		return
	}

	method, err := h.useCase.SetDefault(c.Request.Context(), id, request.UserID)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, method.Serialize())
}

// pathID parses the :id path parameter
func (h *PaymentMethodHandler) pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, domainerr.ErrDataValidation, "Invalid payment method ID format")
		return 0, false
	}
	return id, true
}

// jsonBody enforces the JSON content type and decodes the request body into
// a key-value map
func (h *PaymentMethodHandler) jsonBody(c *gin.Context) (map[string]any, bool) {
	if c.ContentType() != "application/json" {
		h.respondError(c, http.StatusUnsupportedMediaType, domainerr.ErrDataValidation, "Content-Type must be application/json")
		return nil, false
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, http.StatusBadRequest, domainerr.ErrDataValidation, "Body contained bad or no data")
		return nil, false
	}
	return body, true
}

// respondDomainError maps domain errors to HTTP status codes
func (h *PaymentMethodHandler) respondDomainError(c *gin.Context, err error) {
	switch {
	case domainerr.IsNotFoundError(err):
		h.respondError(c, http.StatusNotFound, err, "Payment method not found")
	case domainerr.IsDataValidationError(err), errors.Is(err, domainerr.ErrInvalidUserID):
		h.respondError(c, http.StatusBadRequest, err, err.Error())
	case domainerr.IsRecordLockedError(err):
		h.respondError(c, http.StatusConflict, err, "Payment method is locked by another operation")
	default:
		h.logger.Error("Unhandled error in payment method handler", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		h.respondError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func (h *PaymentMethodHandler) respondError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
