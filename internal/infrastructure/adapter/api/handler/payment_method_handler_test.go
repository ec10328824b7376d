package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paymentshop/payments-service/internal/domain/entity"
	errs "github.com/paymentshop/payments-service/internal/domain/error"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUseCase returns canned results so status mapping can be exercised
// without a store
type fakeUseCase struct {
	method *entity.PaymentMethod
	list   []*entity.PaymentMethod
	err    error
}

func (f *fakeUseCase) Create(context.Context, map[string]any) (*entity.PaymentMethod, error) {
	return f.method, f.err
}

func (f *fakeUseCase) Get(context.Context, uint64) (*entity.PaymentMethod, error) {
	return f.method, f.err
}

func (f *fakeUseCase) List(context.Context, persistence.Filter) ([]*entity.PaymentMethod, error) {
	return f.list, f.err
}

func (f *fakeUseCase) Update(context.Context, uint64, map[string]any) (*entity.PaymentMethod, error) {
	return f.method, f.err
}

func (f *fakeUseCase) Delete(context.Context, uint64) error {
	return f.err
}

func (f *fakeUseCase) SetDefault(context.Context, uint64, uint64) (*entity.PaymentMethod, error) {
	return f.method, f.err
}

func newTestRouter(useCase *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentMethodHandler(useCase, logger.NewNoopLogger())

	router := gin.New()
	group := router.Group("/payment-methods")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/set-default", h.SetDefault)
	return router
}

func samplePayPal() *entity.PaymentMethod {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	return &entity.PaymentMethod{
		ID:        3,
		Name:      "My PayPal",
		UserID:    7,
		Type:      entity.PaymentTypePayPal,
		CreatedAt: now,
		UpdatedAt: now,
		PayPal:    &entity.PayPalDetails{Email: "john@example.com"},
	}
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateHandler(t *testing.T) {
	t.Run("Created with Location header", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{method: samplePayPal()})

		recorder := performJSON(router, http.MethodPost, "/payment-methods",
			`{"name":"My PayPal","type":"PAYPAL","user_id":7,"email":"john@example.com"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "/payment-methods/3", recorder.Header().Get("Location"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "PAYPAL", body["type"])
		assert.Equal(t, "john@example.com", body["email"])
	})

	t.Run("Wrong content type", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/payment-methods", strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
	})

	t.Run("Unrecognized type", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodPost, "/payment-methods",
			`{"name":"x","type":"BITCOIN","user_id":7}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Field validation failure", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{err: errs.NewFieldValidationError("email", "must be a valid email address")})

		recorder := performJSON(router, http.MethodPost, "/payment-methods",
			`{"name":"x","type":"PAYPAL","user_id":7,"email":"bad"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetHandler(t *testing.T) {
	t.Run("Absent method", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{err: errs.ErrPaymentMethodNotFound})

		recorder := performJSON(router, http.MethodGet, "/payment-methods/99", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodGet, "/payment-methods/abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestListHandler(t *testing.T) {
	t.Run("Empty listing is a JSON array", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodGet, "/payment-methods", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "[]", strings.TrimSpace(recorder.Body.String()))
	})

	t.Run("Bad user_id query parameter", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodGet, "/payment-methods?user_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Bad type query parameter", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodGet, "/payment-methods?type=BITCOIN", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("Existing method", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodDelete, "/payment-methods/3", "")

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("Absent method is still no content", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{
			err: errs.NewDataValidationError("payment_method", "delete affected no rows", errs.ErrPaymentMethodNotFound),
		})

		recorder := performJSON(router, http.MethodDelete, "/payment-methods/99", "")

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestSetDefaultHandler(t *testing.T) {
	t.Run("Promoted", func(t *testing.T) {
		promoted := samplePayPal()
		promoted.IsDefault = true
		router := newTestRouter(&fakeUseCase{method: promoted})

		recorder := performJSON(router, http.MethodPost, "/payment-methods/3/set-default", `{"user_id":7}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["is_default"])
	})

	t.Run("Missing user_id", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{})

		recorder := performJSON(router, http.MethodPost, "/payment-methods/3/set-default", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Method owned by another user", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{
			err: errs.NewDataValidationError("payment_method", "method does not belong to user", nil),
		})

		recorder := performJSON(router, http.MethodPost, "/payment-methods/3/set-default", `{"user_id":42}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Row locked by a concurrent operation", func(t *testing.T) {
		router := newTestRouter(&fakeUseCase{err: errs.ErrRecordLocked})

		recorder := performJSON(router, http.MethodPost, "/payment-methods/3/set-default", `{"user_id":7}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}
