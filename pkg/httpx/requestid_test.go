package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/holidays/pkg/ctxmeta"
	"github.com/Gunvolt24/holidays/pkg/httpx"
)

// serveWithRequestID — прогоняет один запрос через middleware и возвращает
// заголовок ответа и id, который увидел обработчик.
func serveWithRequestID(t *testing.T, incoming string) (header, seen string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/api/holidays", func(c *gin.Context) {
		seen, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/holidays", http.NoBody)
	if incoming != "" {
		req.Header.Set(httpx.HeaderRequestID, incoming)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	return w.Header().Get(httpx.HeaderRequestID), seen
}

func TestRequestIDMiddleware(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "client id kept", incoming: "cal-frontend-42", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", 500)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header, seen := serveWithRequestID(t, tc.incoming)

			require.NotEmpty(t, header)
			assert.Equal(t, header, seen, "id в контексте совпадает с заголовком")
			if tc.keep {
				assert.Equal(t, tc.incoming, header)
				return
			}
			_, err := uuid.Parse(header)
			assert.NoError(t, err, "ожидался сгенерированный UUID, got=%q", header)
		})
	}
}
