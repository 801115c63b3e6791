package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		payload      any
		expectedBody string
	}{
		{
			name:         "simple map",
			status:       http.StatusOK,
			payload:      map[string]string{"message": "hello"},
			expectedBody: `{"message":"hello"}`,
		},
		{
			name:         "struct",
			status:       http.StatusCreated,
			payload:      struct{ ID string }{ID: "123"},
			expectedBody: `{"ID":"123"}`,
		},
		{
			name:         "error response",
			status:       http.StatusBadRequest,
			payload:      ErrorResponse{Error: "bad request", Code: "invalid_input"},
			expectedBody: `{"error":"bad request","code":"invalid_input"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, tt.status, tt.payload)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWriteError_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	err := domainErrors.NewValidationError("name", "must not be blank")

	writeError(w, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "validation_error", response.Code)
	assert.Contains(t, response.Error, "name")
}

func TestWriteError_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid identifier",
			err:            domainErrors.InvalidIdentifier("abc"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_id",
		},
		{
			name:           "payment method not found",
			err:            domainErrors.NotFound("Payment", "507f1f77bcf86cd799439011", domainErrors.ErrPaymentMethodNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "transaction not found",
			err:            domainErrors.ErrTransactionNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "cart not found",
			err:            fmt.Errorf("GET http://cart/carts/id/x: %w", domainErrors.ErrCartNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "cart_not_found",
		},
		{
			name:           "unknown status",
			err:            domainErrors.NewDomainError("invalid_status", "unknown status 'X'", domainErrors.ErrUnknownStatus),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_status",
		},
		{
			name:           "cart unavailable",
			err:            fmt.Errorf("GET http://cart/carts/id/x: %w", domainErrors.ErrCartUnavailable),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "upstream_unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			err := json.NewDecoder(w.Body).Decode(&response)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, response.Code)
		})
	}
}

func TestWriteError_DomainErrorMessage(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, domainErrors.NotFound("Payment", "507f1f77bcf86cd799439011", domainErrors.ErrPaymentMethodNotFound))

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Payment with id: 507f1f77bcf86cd799439011 not found at database", response.Error)
}

func TestWriteError_UpstreamHidesURL(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, fmt.Errorf("GET http://order_ms:3001/carts/id/x: %w", domainErrors.ErrCartUnavailable))

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "cart service unavailable", response.Error)
	assert.NotContains(t, response.Error, "order_ms")
}

func TestWriteError_DeadlineIsGatewayTimeout(t *testing.T) {
	w := httptest.NewRecorder()
	err := fmt.Errorf("GET http://cart-primary/carts/id/c1: %w", context.DeadlineExceeded)

	writeError(w, err)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "timeout", response.Code)
	assert.NotContains(t, response.Error, "cart-primary")
}

func TestWriteError_GenericDomainError(t *testing.T) {
	w := httptest.NewRecorder()
	err := domainErrors.NewDomainError("custom_error", "custom error message", nil)

	writeError(w, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "custom_error", response.Code)
	assert.Equal(t, "custom error message", response.Error)
}

func TestWriteError_UnknownError_FallbackToInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()
	err := errors.New("connection reset by peer")

	writeError(w, err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "internal_error", response.Code)
	assert.Equal(t, "internal server error", response.Error)
}

func TestDecodeAndValidate_Success(t *testing.T) {
	body := `{"name":"Pix","description":"instant transfer"}`
	req := httptest.NewRequest("POST", "/test", strings.NewReader(body))

	var result PaymentMethodRequest
	err := decodeAndValidate(req, &result)

	require.NoError(t, err)
	assert.Equal(t, "Pix", result.Name)
	assert.Equal(t, "instant transfer", result.Description)
}

func TestDecodeAndValidate_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{invalid json}`))

	var result PaymentMethodRequest
	err := decodeAndValidate(req, &result)

	var validationErr *domainErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "body", validationErr.Field)
	assert.Contains(t, validationErr.Message, "invalid JSON")
}

func TestDecodeAndValidate_ReportsJSONFieldName(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"paymentMethodId":""}`))

	var result TransactionRequest
	err := decodeAndValidate(req, &result)

	var validationErr *domainErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "paymentMethodId", validationErr.Field)
	assert.Contains(t, validationErr.Message, "validation failed")
}

func TestDecodeAndValidate_WebhookMissingOrder(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"status":"Pago","transactionId":"abc"}`))

	var result WebhookRequest
	err := decodeAndValidate(req, &result)

	var validationErr *domainErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "orderId", validationErr.Field)
}

func TestDecodeAndValidate_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte{}))

	var result PaymentMethodRequest
	err := decodeAndValidate(req, &result)

	assert.ErrorIs(t, err, domainErrors.ErrValidationFailed)
}
