package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type errorBodyWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorBodyWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[debug] %s %s -> %d: %s", w.gc.Request.Method, w.gc.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs error response bodies in debug mode.
// Doesn't work together with GZIP.
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorBodyWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
