package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/holidays/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Коды ошибок уровня маршрутов; коды ошибок query-параметров — в httpx.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    code,
	})
}

// writeQueryError — 400 для ошибок разбора query, остальное считаем внутренней ошибкой.
func writeQueryError(c *gin.Context, err error) {
	var qe *httpx.QueryError
	if errors.As(err, &qe) {
		writeError(c, http.StatusBadRequest, qe.Code, qe.Message)
		return
	}
	writeError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
