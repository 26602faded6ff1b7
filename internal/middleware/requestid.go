package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldquote/pricing-service/internal/pkg/cuid2"
)

// RequestIDKey is the context key under which the request ID is stored.
const RequestIDKey = "requestId"

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware assigns each request a time-sortable ID, honoring one
// supplied by an upstream proxy.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = cuid2.New("req")
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
