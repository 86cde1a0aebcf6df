package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizrecords/backend/internal/interfaces/http/dto"
)

// DefaultMaxBodySize is the default request body limit (1 MiB). Order
// payloads are small; anything larger is almost certainly a mistake.
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimit returns a middleware that rejects request bodies larger
// than maxBytes. A non-positive maxBytes falls back to the default.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
