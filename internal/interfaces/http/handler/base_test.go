package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/interfaces/http/dto"
	"github.com/Tecnavis/paycollection/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext simulates an authenticated request without a real JWT
func setAuthContext(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.JWTUserIDKey, userID.String())
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name: "from context string",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-request-id")
			},
			expectedID: "ctx-request-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set(middleware.RequestIDKey, "header-request-id")
			},
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-id")
				c.Request.Header.Set(middleware.RequestIDKey, "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			tt.setup(c)

			id := getRequestID(c)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Run("returns parsed user ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		expected := uuid.New()
		setAuthContext(c, expected)

		actual, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("errors when not authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, err := getUserID(c)
		assert.Error(t, err)
	})

	t.Run("errors on malformed user ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(middleware.JWTUserIDKey, "not-a-uuid")

		_, err := getUserID(c)
		assert.Error(t, err)
	})
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SuccessWithMeta(c, []string{"a", "b"}, 42, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(42), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.PageSize)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Created(c, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandlerErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		call           func(h *BaseHandler, c *gin.Context)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "bad request",
			call:           func(h *BaseHandler, c *gin.Context) { h.BadRequest(c, "bad") },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeBadRequest,
		},
		{
			name:           "not found",
			call:           func(h *BaseHandler, c *gin.Context) { h.NotFound(c, "missing") },
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "unauthorized",
			call:           func(h *BaseHandler, c *gin.Context) { h.Unauthorized(c, "no token") },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.ErrCodeUnauthorized,
		},
		{
			name:           "forbidden",
			call:           func(h *BaseHandler, c *gin.Context) { h.Forbidden(c, "nope") },
			expectedStatus: http.StatusForbidden,
			expectedCode:   dto.ErrCodeForbidden,
		},
		{
			name:           "conflict",
			call:           func(h *BaseHandler, c *gin.Context) { h.Conflict(c, "dup") },
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "internal error",
			call:           func(h *BaseHandler, c *gin.Context) { h.InternalError(c, "boom") },
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			tt.call(h, c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.Response
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestBaseHandlerValidationError(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)
	c.Set(middleware.RequestIDKey, "req-123")

	h.ValidationError(c, []dto.ValidationDetail{
		{Field: "amount", Message: "amount is required"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "amount", resp.Error.Details[0].Field)
}

func TestBaseHandlerHandleDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            shared.NewDomainError("NOT_FOUND", "Enrollment not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "already exists maps to conflict",
			err:            shared.NewDomainError("ALREADY_EXISTS", "Customer is already enrolled in this scheme"),
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeAlreadyExists,
		},
		{
			name:           "validation error maps to bad request",
			err:            shared.NewDomainError("VALIDATION_ERROR", "Payment of ₹600.00 exceeds scheme total"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeValidation,
		},
		{
			name:           "invalid state maps to unprocessable entity",
			err:            shared.NewDomainError("INVALID_STATE", "Enrollment is closed"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeInvalidState,
		},
		{
			name:           "concurrency conflict",
			err:            shared.NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process"),
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConcurrencyConflict,
		},
		{
			name:           "non-domain error falls back to internal",
			err:            errors.New("database gone"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", nil)

			h.HandleDomainError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.Response
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestBaseHandlerHandleDomainErrorKeepsMessage(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)

	h.HandleDomainError(c, shared.NewDomainError(
		"VALIDATION_ERROR",
		"Payment of ₹600.00 would exceed the scheme total of ₹1000.00 (already paid ₹500.00, at most ₹500.00 can be accepted)",
	))

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "already paid ₹500.00")
	assert.Contains(t, resp.Error.Message, "at most ₹500.00")
}

func TestBaseHandlerHandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.HandleError(c, nil)

	// No response written for nil error
	assert.Empty(t, w.Body.Bytes())
}
