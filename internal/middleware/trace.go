package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bbip/pkg/log"
)

const traceHeader = "X-Request-ID"

// TraceID tags the request context with the caller's X-Request-ID, or a fresh uuid.
// The id is echoed back so clients can quote it.
func (m Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(traceHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Header(traceHeader, id)
		c.Next()
	}
}
