package domain

import (
	"strconv"
	"strings"
)

// DateLayout — формат дат праздников (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MaxHolidayNameLen — максимальная длина названия праздника.
const MaxHolidayNameLen = 200

// Category — категория государственного праздника.
type Category string

const (
	CategoryNational   Category = "national"
	CategoryState      Category = "state"
	CategoryReligious  Category = "religious"
	CategoryCultural   Category = "cultural"
	CategoryObservance Category = "observance"
)

// Valid — входит ли категория в словарь.
func (c Category) Valid() bool {
	switch c {
	case CategoryNational, CategoryState, CategoryReligious, CategoryCultural, CategoryObservance:
		return true
	}
	return false
}

// RegularHoliday — государственный/общественный праздник страны.
// После нормализации источником данных не изменяется.
type RegularHoliday struct {
	ID              string   `json:"id"               validate:"required"`
	Name            string   `json:"name"             validate:"required,max=200"`
	Date            string   `json:"date"             validate:"required,datetime=2006-01-02"`
	Country         string   `json:"country"          validate:"required,len=2,uppercase"`
	Region          *string  `json:"region"`
	Category        Category `json:"category"         validate:"required,oneof=national state religious cultural observance"`
	Description     string   `json:"description"`
	IsPublicHoliday bool     `json:"isPublicHoliday"`
}

// Year — год из даты праздника.
func (h *RegularHoliday) Year() (int, bool) { return datePart(h.Date, 0) }

// Month — месяц (1..12) из даты праздника.
func (h *RegularHoliday) Month() (int, bool) { return datePart(h.Date, 1) }

// datePart — достаёт числовую часть YYYY-MM-DD по индексу без полного парсинга.
func datePart(date string, idx int) (int, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[idx])
	if err != nil {
		return 0, false
	}
	return n, true
}
