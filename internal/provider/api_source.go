package provider

import (
	"context"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

// apiSource — праздники из внешнего API; повторы выполняет сам клиент.
type apiSource struct {
	fetcher ports.HolidayFetcher
}

func (apiSource) name() string { return string(domain.SourceAPI) }

func (s apiSource) holidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error) {
	return s.fetcher.FetchHolidays(ctx, country, year, month)
}
