// Package holidayapi — HTTP-клиент holidayapi.com с ограничением частоты и повторами.
package holidayapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/metrics"
	"github.com/Gunvolt24/holidays/pkg/telemetry"
)

const (
	DefaultBaseURL    = "https://holidayapi.com/v1/holidays"
	DefaultAPIKey     = "demo"
	DefaultTimeout    = 5 * time.Second
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
	DefaultMaxDelay   = 8 * time.Second
	DefaultRateLimit  = 10

	userAgent    = "holidays-calendar/1.0"
	maxBodyBytes = 4 << 20

	minYear = 1900
	maxYear = 2100
)

var _ ports.HolidayFetcher = (*Client)(nil)

// Config — параметры клиента. Нулевые значения, кроме MaxRetries, заменяются значениями по умолчанию.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	RateLimit  float64
	RateBurst  int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIKey == "" {
		c.APIKey = DefaultAPIKey
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay < c.BaseDelay {
		c.MaxDelay = max(DefaultMaxDelay, c.BaseDelay)
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.RateBurst <= 0 {
		c.RateBurst = max(1, int(c.RateLimit))
	}
	return c
}

// Client — клиент внешнего API праздников.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	clock      clockwork.Clock
	log        ports.Logger
}

// Option — функциональная опция Client.
type Option func(*Client)

// WithHTTPClient — свой http.Client (в тестах — клиент httptest-сервера).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithClock — часы для пауз между повторами.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewClient — создаёт клиент. Таймаут задаётся на каждую попытку через контекст.
func NewClient(cfg Config, log ports.Logger, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		clock:      clockwork.NewRealClock(),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchHolidays — праздники страны за месяц. Повторяет только повторяемые ошибки,
// с экспоненциальной задержкой; отмена ctx прекращает повторы.
func (c *Client) FetchHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if err := validateArgs(country, year, month); err != nil {
		return nil, err
	}

	ctx, span := telemetry.Tracer().Start(ctx, "holidayapi.FetchHolidays", trace.WithAttributes(
		attribute.String("holiday.country", country),
		attribute.Int("holiday.year", year),
		attribute.Int("holiday.month", month),
	))
	defer span.End()

	var lastErr error
	for attempt := 0; ; attempt++ {
		holidays, err := c.fetchOnce(ctx, country, year, month)
		if err == nil {
			span.SetAttributes(attribute.Int("holiday.count", len(holidays)))
			return holidays, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			span.SetStatus(codes.Error, ctxErr.Error())
			return nil, fmt.Errorf("holidayapi: fetch %s %d-%02d: %w", country, year, month, ctxErr)
		}

		lastErr = err
		if !IsRetryable(err) || attempt >= c.cfg.MaxRetries {
			break
		}

		delay := Backoff(attempt, c.cfg.BaseDelay, c.cfg.MaxDelay)
		metrics.ExternalAPIRetries.Inc()
		span.AddEvent("retry", trace.WithAttributes(
			attribute.Int("attempt", attempt+1),
			attribute.String("error", err.Error()),
		))
		c.warnf(ctx, "holidayapi: attempt %d/%d for %s %d-%02d failed: %v; retry in %s",
			attempt+1, c.cfg.MaxRetries+1, country, year, month, err, delay)

		if !c.sleepWithBackoff(ctx, delay) {
			span.SetStatus(codes.Error, "canceled")
			return nil, fmt.Errorf("holidayapi: fetch %s %d-%02d: %w", country, year, month, ctx.Err())
		}
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	return nil, lastErr
}

// fetchOnce — одна попытка запроса с собственным таймаутом.
func (c *Client) fetchOnce(ctx context.Context, country string, year, month int) (holidays []domain.RegularHoliday, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &APIError{Kind: ErrRateLimited, Err: err}
	}

	start := c.clock.Now()
	defer func() {
		metrics.ExternalAPIDuration.Observe(c.clock.Since(start).Seconds())
		metrics.ExternalAPIRequests.WithLabelValues(resultLabel(err)).Inc()
	}()

	reqURL, err := c.requestURL(country, year, month)
	if err != nil {
		return nil, err
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &APIError{Kind: ErrInvalidArgument, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if err := statusError(resp.StatusCode, body); err != nil {
		return nil, err
	}

	holidays, dropped, err := decodeHolidays(body, country)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		c.warnf(ctx, "holidayapi: dropped %d records with invalid date (%s %d-%02d, url=%s)",
			dropped, country, year, month, maskedURL(reqURL))
	}
	return holidays, nil
}

func (c *Client) requestURL(country string, year, month int) (*url.URL, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, &APIError{Kind: ErrInvalidArgument, Err: fmt.Errorf("base url: %w", err)}
	}
	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	q.Set("country", country)
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	u.RawQuery = q.Encode()
	return u, nil
}

func (c *Client) warnf(ctx context.Context, format string, args ...any) {
	if c.log != nil {
		c.log.Warnf(ctx, format, args...)
	}
}

// ------вспомогательные функции------

func validateArgs(country string, year, month int) error {
	if len(country) != 2 || !isLetters(country) {
		return &APIError{Kind: ErrInvalidArgument, Err: fmt.Errorf("country %q: want 2-letter code", country)}
	}
	if year < minYear || year > maxYear {
		return &APIError{Kind: ErrInvalidArgument, Err: fmt.Errorf("year %d: want %d..%d", year, minYear, maxYear)}
	}
	if month < 1 || month > 12 {
		return &APIError{Kind: ErrInvalidArgument, Err: fmt.Errorf("month %d: want 1..12", month)}
	}
	return nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// transportError — классифицирует ошибку транспорта: таймаут либо сеть.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Kind: ErrTimeout, Err: err}
	}
	return &APIError{Kind: ErrNetwork, Err: err}
}

// statusError — классифицирует HTTP-статус; 2xx — не ошибка.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var detail error
	if msg := strings.TrimSpace(string(body)); msg != "" {
		detail = errors.New(truncateRunes(msg, 200))
	}
	switch {
	case status == http.StatusTooManyRequests:
		return &APIError{Kind: ErrRateLimited, StatusCode: status, Err: detail}
	case status >= 500:
		return &APIError{Kind: ErrHTTPServer, StatusCode: status, Err: detail}
	default:
		return &APIError{Kind: ErrHTTPClient, StatusCode: status, Err: detail}
	}
}

// maskedURL — URL запроса для логов, ключ API скрыт.
func maskedURL(u *url.URL) string {
	masked := *u
	q := masked.Query()
	if key := q.Get("key"); key != "" {
		q.Set("key", maskKey(key))
	}
	masked.RawQuery = q.Encode()
	return masked.String()
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:2] + "****"
}
