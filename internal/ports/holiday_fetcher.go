package ports

import (
	"context"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// HolidayFetcher — клиент внешнего API праздников.
type HolidayFetcher interface {
	FetchHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error)
}
