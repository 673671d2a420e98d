package domain

import (
	"fmt"
	"strings"
)

// HolidayDocument — формат файла праздников: {"countries": {"US_2025": [...]}}.
type HolidayDocument struct {
	Countries map[string][]RegularHoliday `json:"countries"`
}

// DocumentKey — ключ группы праздников в документе: {COUNTRY}_{YEAR}.
func DocumentKey(country string, year int) string {
	return fmt.Sprintf("%s_%d", strings.ToUpper(country), year)
}
