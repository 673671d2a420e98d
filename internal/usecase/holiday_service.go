package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/telemetry"
)

// DefaultHolidayTTL — срок хранения месяца праздников в кэше.
const DefaultHolidayTTL = 30 * 24 * time.Hour

var _ ports.HolidayReadService = (*HolidayService)(nil)

// HolidayService — праздники стран через кэш поверх провайдера (без знаний о транспорте).
type HolidayService struct {
	provider ports.HolidayProvider // источник данных с деградацией до mock
	cache    ports.HolidayCache    // кэш месяцев
	log      ports.Logger
	ttl      time.Duration
}

// NewHolidayService — DI-конструктор. ttl <= 0 означает DefaultHolidayTTL.
func NewHolidayService(
	provider ports.HolidayProvider,
	cache ports.HolidayCache,
	log ports.Logger,
	ttl time.Duration,
) *HolidayService {
	if ttl <= 0 {
		ttl = DefaultHolidayTTL
	}
	return &HolidayService{
		provider: provider,
		cache:    cache,
		log:      log,
		ttl:      ttl,
	}
}

// CacheKey — ключ кэша для страны и месяца: holidays:{COUNTRY}:{year}:{MM}.
func CacheKey(country string, year, month int) string {
	return fmt.Sprintf("holidays:%s:%d:%02d", normalizeCountry(country), year, month)
}

// FetchHolidays — праздники за месяц: из кэша, при промахе — из провайдера с записью в кэш.
// Пустой результат тоже кэшируется.
func (s *HolidayService) FetchHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error) {
	country = normalizeCountry(country)
	key := CacheKey(country, year, month)

	ctx, span := telemetry.Tracer().Start(ctx, "HolidayService.FetchHolidays", trace.WithAttributes(
		attribute.String("cache.key", key),
	))
	defer span.End()

	if holidays, found := s.cache.Get(ctx, key); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		s.log.Infof(ctx, "cache hit key=%s", key)
		return cloneHolidays(holidays), nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	s.log.Infof(ctx, "cache miss key=%s", key)

	start := time.Now()
	holidays, err := s.provider.GetHolidays(ctx, country, year, month)
	if err != nil {
		span.RecordError(err)
		s.log.Errorf(ctx, "provider.GetHolidays failed key=%s err=%v", key, err)
		return nil, err
	}
	if holidays == nil {
		holidays = []domain.RegularHoliday{}
	}

	s.cache.Set(ctx, key, cloneHolidays(holidays), s.ttl)
	s.log.Infof(ctx, "provider fetch key=%s source=%s count=%d took=%s",
		key, s.provider.Source(), len(holidays), time.Since(start))
	return holidays, nil
}

// FetchHolidaysForMonths — параллельно запрашивает все месяцы и группирует праздники
// по их собственной дате. Первая ошибка отменяет остальные запросы.
func (s *HolidayService) FetchHolidaysForMonths(
	ctx context.Context,
	country string,
	year int,
	months []int,
) (map[string][]domain.RegularHoliday, error) {
	results := make([][]domain.RegularHoliday, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for i, month := range months {
		g.Go(func() error {
			holidays, err := s.FetchHolidays(gctx, country, year, month)
			if err != nil {
				return fmt.Errorf("month %d: %w", month, err)
			}
			results[i] = holidays
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byDate := make(map[string][]domain.RegularHoliday)
	for _, holidays := range results {
		for i := range holidays {
			byDate[holidays[i].Date] = append(byDate[holidays[i].Date], holidays[i])
		}
	}
	return byDate, nil
}

// ClearCache — сбрасывает кэш одного месяца.
func (s *HolidayService) ClearCache(ctx context.Context, country string, year, month int) {
	key := CacheKey(country, year, month)
	s.cache.Delete(ctx, key)
	s.log.Infof(ctx, "cache cleared key=%s", key)
}

// ClearAllCache — сбрасывает весь кэш.
func (s *HolidayService) ClearAllCache(ctx context.Context) {
	s.cache.Clear(ctx)
	s.log.Infof(ctx, "cache cleared")
}

// CacheStats — размер кэша и TTL записей.
func (s *HolidayService) CacheStats() ports.CacheStats {
	return ports.CacheStats{Size: s.cache.Size(), TTL: s.ttl}
}

// Source — источник данных провайдера.
func (s *HolidayService) Source() domain.Source { return s.provider.Source() }

// WarmUp — прогрев кэша: все 12 месяцев года для каждой страны.
// Сбой по стране логируется и не прерывает прогрев; возвращает число прогретых месяцев.
func (s *HolidayService) WarmUp(ctx context.Context, countries []string, year int) (int, error) {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}

	start := time.Now()
	warmed := 0
	for _, country := range countries {
		if err := ctx.Err(); err != nil {
			return warmed, err
		}
		if _, err := s.FetchHolidaysForMonths(ctx, country, year, months); err != nil {
			s.log.Warnf(ctx, "cache warm-up failed country=%s year=%d err=%v", country, year, err)
			continue
		}
		warmed += len(months)
	}
	s.log.Infof(ctx, "cache warmed with %d months (%d countries) in %s", warmed, len(countries), time.Since(start))
	return warmed, nil
}

// ------вспомогательные функции------

func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}

// cloneHolidays — копия среза, чтобы изменения вызывающего не попадали в кэш.
func cloneHolidays(holidays []domain.RegularHoliday) []domain.RegularHoliday {
	if holidays == nil {
		return nil
	}
	return append(make([]domain.RegularHoliday, 0, len(holidays)), holidays...)
}
