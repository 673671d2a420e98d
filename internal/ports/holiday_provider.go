package ports

import (
	"context"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// HolidayProvider — источник праздников (file/mock/api) с деградацией до mock.
type HolidayProvider interface {
	GetHolidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error)
	Source() domain.Source
}
