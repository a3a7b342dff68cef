package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps inbound request bodies. The lead form payload is a few
// hundred bytes, so anything near the cap is garbage.
const MaxBodyBytes int64 = 200 << 10 // 200 KB

// BodyLimit wraps every request body in http.MaxBytesReader so oversized
// payloads fail during JSON binding instead of being buffered in full.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
