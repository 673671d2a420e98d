package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики праздников и корпоративных праздников.
type Handler struct {
	holidays ports.HolidayReadService
	work     ports.WorkHolidayReadService
	log      ports.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewHandler — timeout <= 0 отключает ограничение времени обработки запроса.
func NewHandler(holidays ports.HolidayReadService, work ports.WorkHolidayReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{
		holidays: holidays,
		work:     work,
		log:      log,
		timeout:  timeout,
		now:      time.Now,
	}
}

// NewRouter — gin-роутер со всеми маршрутами; otelServiceName == "" отключает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(h.recovery))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		hol := api.Group("/holidays")
		hol.GET("", h.getHolidays)
		hol.GET("/by-range", h.getHolidaysByRange)
		hol.GET("/cache/stats", h.getCacheStats)
		hol.DELETE("/cache", h.clearCache)

		work := api.Group("/work-holidays")
		work.GET("", h.getWorkHolidays)
		work.GET("/by-date", h.getWorkHolidaysByDate)
		work.GET("/by-range", h.getWorkHolidaysByRange)
		work.GET("/departments", h.getDepartments)
		work.GET("/:id", h.getWorkHolidayByID)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, CodeNotFound, c.Request.Method+" "+c.Request.URL.Path+" not found")
	})
	r.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, c.Request.Method+" is not allowed for "+c.Request.URL.Path)
	})

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"source":    h.holidays.Source().String(),
	})
}

// requestContext — контекст запроса с ограничением времени обработки.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) recovery(c *gin.Context, recovered any) {
	h.log.Errorf(c.Request.Context(), "panic recovered path=%s: %v", c.Request.URL.Path, recovered)
	writeError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
