package httpx

import (
	"time"

	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/gin-gonic/gin"
)

// служебные маршруты без записи в лог
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
	"/health":  {},
}

// RequestLogger — middleware для логирования HTTP-запросов; request_id и trace id добавляет логгер из ctx.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, quiet := quietPaths[path]; quiet {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		format := "request method=%s path=%s query=%q status=%d ip=%s duration=%s size=%d"
		args := []any{
			c.Request.Method, path, c.Request.URL.RawQuery, status,
			c.ClientIP(), time.Since(start), c.Writer.Size(),
		}

		if status >= 500 {
			log.Errorf(c.Request.Context(), format, args...)
			return
		}
		log.Infof(c.Request.Context(), format, args...)
	}
}
