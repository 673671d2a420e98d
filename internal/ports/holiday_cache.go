package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// HolidayCache — кэш праздников по ключу с TTL.
// Требования к реализации: потокобезопасность; запись не возвращается после истечения TTL.
type HolidayCache interface {
	// Get — (value, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) ([]domain.RegularHoliday, bool)

	// Set — сохранить значение; ttl <= 0 означает TTL по умолчанию.
	Set(ctx context.Context, key string, value []domain.RegularHoliday, ttl time.Duration)

	// Delete — удалить ключ (отсутствие ключа не ошибка).
	Delete(ctx context.Context, key string)

	// Clear — удалить все записи.
	Clear(ctx context.Context)

	// Size — количество неистёкших записей.
	Size() int
}
