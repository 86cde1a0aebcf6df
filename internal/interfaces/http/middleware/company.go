package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizrecords/backend/internal/infrastructure/logger"
	"github.com/bizrecords/backend/internal/interfaces/http/dto"
)

// Keys used to store company information in gin.Context
const (
	CompanyIDKey     = "company_id"
	CompanyHeaderKey = "X-Company-ID"
)

// CompanyConfig holds configuration for the company context middleware
type CompanyConfig struct {
	// SkipPaths are path prefixes served without a company context
	SkipPaths []string
	// Required determines whether a missing header is an error
	Required bool
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultCompanyConfig returns the default company middleware configuration
func DefaultCompanyConfig() CompanyConfig {
	return CompanyConfig{
		SkipPaths: []string{"/health", "/healthz", "/ready", "/api/v1/health", "/api/v1/companies"},
		Required:  true,
		Logger:    nil,
	}
}

// CompanyContext extracts the acting company from the X-Company-ID
// header. Every record in the system belongs to exactly one company, so
// all routes below the company level require this header.
func CompanyContext() gin.HandlerFunc {
	return CompanyContextWithConfig(DefaultCompanyConfig())
}

// CompanyContextWithConfig returns company middleware with custom configuration
func CompanyContextWithConfig(cfg CompanyConfig) gin.HandlerFunc {
	skipped := func(path string) bool {
		for _, p := range cfg.SkipPaths {
			if strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		if skipped(c.Request.URL.Path) {
			c.Next()
			return
		}

		raw := c.GetHeader(CompanyHeaderKey)
		if raw == "" {
			if cfg.Required {
				c.AbortWithStatusJSON(http.StatusBadRequest,
					dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Company-ID header is required"))
				return
			}
			c.Next()
			return
		}

		companyID, err := uuid.Parse(raw)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("rejected request with malformed company ID",
					zap.String("company_id", raw),
					zap.String("path", c.Request.URL.Path))
			}
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Company-ID must be a UUID"))
			return
		}

		c.Set(CompanyIDKey, companyID)

		// Tag the request context so downstream log entries, including
		// the SQL trace log, carry the acting company.
		ctx, _ := logger.WithCompanyID(c.Request.Context(), logger.FromContext(c.Request.Context()), companyID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCompanyID returns the company ID stored by CompanyContext.
// The second return value reports whether a company context is present.
func GetCompanyID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CompanyIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
