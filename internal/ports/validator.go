package ports

import (
	"context"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// HolidayValidator — проверка записей праздников из внешних источников.
type HolidayValidator interface {
	Validate(ctx context.Context, holiday *domain.RegularHoliday) error
}
