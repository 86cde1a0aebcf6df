package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizrecords/backend/internal/infrastructure/logger"
)

func companyTestRouter() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	var captured uuid.UUID

	r := gin.New()
	r.Use(CompanyContext())
	r.GET("/api/v1/purchase-orders", func(c *gin.Context) {
		id, ok := GetCompanyID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = id
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestCompanyContext(t *testing.T) {
	t.Run("valid header is stored in context", func(t *testing.T) {
		r, captured := companyTestRouter()
		companyID := uuid.New()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/purchase-orders", nil)
		req.Header.Set(CompanyHeaderKey, companyID.String())
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, companyID, *captured)
	})

	t.Run("company is tagged on the request context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		companyID := uuid.New()
		var fromCtx string

		r := gin.New()
		r.Use(CompanyContext())
		r.GET("/api/v1/purchase-orders", func(c *gin.Context) {
			fromCtx = logger.GetCompanyID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/purchase-orders", nil)
		req.Header.Set(CompanyHeaderKey, companyID.String())
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, companyID.String(), fromCtx)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		r, _ := companyTestRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/purchase-orders", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "X-Company-ID header is required")
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		r, _ := companyTestRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/purchase-orders", nil)
		req.Header.Set(CompanyHeaderKey, "not-a-uuid")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be a UUID")
	})

	t.Run("skip paths pass without the header", func(t *testing.T) {
		r, _ := companyTestRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates an ID when absent", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			assert.NotEmpty(t, GetRequestID(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("preserves a caller supplied ID", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "caller-id-42")
		r.ServeHTTP(w, req)

		assert.Equal(t, "caller-id-42", w.Header().Get("X-Request-ID"))
	})
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BodyLimit(16))
	r.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.ContentLength = 1024
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
