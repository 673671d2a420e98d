// Пакет dates — календарные помощники для ответов API (день недели, выходной, ISO-неделя).
package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

// Layout — формат даты в запросах и ответах.
const Layout = "2006-01-02"

// ErrBadDate — строка не является датой YYYY-MM-DD.
var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

// Parse — разбирает YYYY-MM-DD в полночь UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

// IsWeekend — суббота или воскресенье.
func IsWeekend(t time.Time) bool { return cal.IsWeekend(t) }

// DayName — английское название дня недели.
func DayName(t time.Time) string { return t.Weekday().String() }

// ISOWeek — номер недели по ISO 8601.
func ISOWeek(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}

// Info — сводка по дате для meta-блока ответа.
type Info struct {
	Date      string `json:"date"`
	DayName   string `json:"dayName"`
	IsWeekend bool   `json:"isWeekend"`
	ISOWeek   int    `json:"isoWeek"`
}

// Describe — разбирает дату и собирает Info.
func Describe(s string) (Info, error) {
	t, err := Parse(s)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Date:      t.Format(Layout),
		DayName:   DayName(t),
		IsWeekend: IsWeekend(t),
		ISOWeek:   ISOWeek(t),
	}, nil
}
