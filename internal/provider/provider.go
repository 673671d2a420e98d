// Package provider — выбор источника праздников (файл, mock, внешний API)
// с деградацией до mock-данных при сбое источника.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/metrics"
)

// DefaultDataFile — путь к файлу праздников по умолчанию.
const DefaultDataFile = "./data/holidays.json"

var (
	// ErrDataSourceUnavailable — файл отсутствует, не читается или повреждён.
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	// ErrNoFetcher — источник api настроен без клиента внешнего API.
	ErrNoFetcher = errors.New("api source requires a holiday fetcher")
)

var _ ports.HolidayProvider = (*Provider)(nil)

// source — одно звено цепочки источников.
type source interface {
	name() string
	holidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error)
}

// Provider — источник праздников, выбранный один раз при создании.
type Provider struct {
	kind  domain.Source
	chain []source
	log   ports.Logger
}

// Option — функциональная опция Provider.
type Option func(*settings)

type settings struct {
	log       ports.Logger
	dataFile  string
	fetcher   ports.HolidayFetcher
	validator ports.HolidayValidator
}

// WithLogger — логгер предупреждений о деградации.
func WithLogger(log ports.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithDataFile — путь к JSON-файлу праздников для источника file.
func WithDataFile(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.dataFile = path
		}
	}
}

// WithFetcher — клиент внешнего API для источника api.
func WithFetcher(f ports.HolidayFetcher) Option {
	return func(s *settings) { s.fetcher = f }
}

// WithValidator — валидатор записей файла; невалидные записи отбрасываются при загрузке.
func WithValidator(v ports.HolidayValidator) Option {
	return func(s *settings) { s.validator = v }
}

// New — создаёт провайдер для источника kind.
// Цепочки: file → [file, mock], api → [api, mock], mock → [mock].
func New(kind domain.Source, opts ...Option) (*Provider, error) {
	s := settings{dataFile: DefaultDataFile}
	for _, opt := range opts {
		opt(&s)
	}

	mock := mockSource{}
	var chain []source
	switch kind {
	case domain.SourceMock:
		chain = []source{mock}
	case domain.SourceAPI:
		if s.fetcher == nil {
			return nil, ErrNoFetcher
		}
		chain = []source{apiSource{fetcher: s.fetcher}, mock}
	case domain.SourceFile:
		chain = []source{newFileSource(s.dataFile, s.validator, s.log), mock}
	default:
		return nil, fmt.Errorf("unknown holiday source %q", kind)
	}

	return &Provider{kind: kind, chain: chain, log: s.log}, nil
}

// GetHolidays — праздники страны за месяц. Сбой file/api логируется и
// заменяется mock-данными; ошибка возвращается, только если отказали все звенья
// или контекст вызывающего отменён.
func (p *Provider) GetHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error) {
	country = strings.ToUpper(strings.TrimSpace(country))

	var lastErr error
	for i, src := range p.chain {
		holidays, err := src.holidays(ctx, country, year, month)
		if err == nil {
			return holidays, nil
		}
		// отмена вызывающего не сбой источника: mock-данные не подставляем
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("holiday source %s: %w", src.name(), ctxErr)
		}
		lastErr = err
		if i < len(p.chain)-1 {
			metrics.ProviderFallbacks.WithLabelValues(src.name()).Inc()
			p.warnf(ctx, "holiday source %s failed for %s %d-%02d: %v; falling back to %s",
				src.name(), country, year, month, err, p.chain[i+1].name())
		}
	}
	return nil, fmt.Errorf("all holiday sources failed: %w", lastErr)
}

// Source — настроенный источник.
func (p *Provider) Source() domain.Source { return p.kind }

// HasValidAPIKey — ключ задан и не равен демонстрационному "demo".
func HasValidAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != "demo"
}

func (p *Provider) warnf(ctx context.Context, format string, args ...any) {
	if p.log != nil {
		p.log.Warnf(ctx, format, args...)
	}
}

// filterByMonth — записи, чья дата приходится на month (год не проверяется).
func filterByMonth(holidays []domain.RegularHoliday, month int) []domain.RegularHoliday {
	out := make([]domain.RegularHoliday, 0, len(holidays))
	for i := range holidays {
		if m, ok := holidays[i].Month(); ok && m == month {
			out = append(out, holidays[i])
		}
	}
	return out
}
