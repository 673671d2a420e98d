package holidayapi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("holidayapi: invalid argument")
	ErrNetwork         = errors.New("holidayapi: network error")
	ErrTimeout         = errors.New("holidayapi: timeout")
	ErrRateLimited     = errors.New("holidayapi: rate limited")
	ErrHTTPClient      = errors.New("holidayapi: client error")
	ErrHTTPServer      = errors.New("holidayapi: server error")
	ErrDecode          = errors.New("holidayapi: decode error")
)

// APIError — классифицированная ошибка одной попытки запроса.
// Kind — один из сентинелов пакета; errors.Is работает и по Kind, и по Err.
type APIError struct {
	Kind       error
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%v (status %d): %v", e.Kind, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%v (status %d)", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsRetryable — можно ли повторить запрос: сеть, таймаут, 429 и 5xx.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrHTTPServer)
}

// resultLabel — значение лейбла result для метрики запросов.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrHTTPServer):
		return "server_error"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "client_error"
	}
}
