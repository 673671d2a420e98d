package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// CacheStats — статистика кэша праздников.
type CacheStats struct {
	Size int
	TTL  time.Duration
}

// HolidayReadService — сервис чтения праздников для транспортного слоя.
type HolidayReadService interface {
	FetchHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error)
	FetchHolidaysForMonths(ctx context.Context, country string, year int, months []int) (map[string][]domain.RegularHoliday, error)
	ClearCache(ctx context.Context, country string, year, month int)
	ClearAllCache(ctx context.Context)
	CacheStats() CacheStats
	Source() domain.Source
}
