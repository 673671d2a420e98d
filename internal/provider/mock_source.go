package provider

import (
	"context"

	"github.com/Gunvolt24/holidays/internal/domain"
)

// mockSource — встроенная таблица; конечное звено цепочки, не отказывает.
type mockSource struct{}

func (mockSource) name() string { return string(domain.SourceMock) }

func (mockSource) holidays(_ context.Context, country string, _, month int) ([]domain.RegularHoliday, error) {
	if country == "IN" {
		return filterByMonth(indianHolidays, month), nil
	}

	out := filterByMonth(globalHolidays, month)
	for i := range out {
		out[i].Country = country
	}
	return out, nil
}

var globalHolidays = []domain.RegularHoliday{
	{
		ID:              "mock_1",
		Name:            "New Year's Day",
		Date:            "2025-01-01",
		Country:         "GLOBAL",
		Category:        domain.CategoryNational,
		Description:     "First day of the year",
		IsPublicHoliday: true,
	},
	{
		ID:              "mock_2",
		Name:            "Christmas Day",
		Date:            "2025-12-25",
		Country:         "GLOBAL",
		Category:        domain.CategoryNational,
		Description:     "Christmas Celebration",
		IsPublicHoliday: true,
	},
}

var indianHolidays = []domain.RegularHoliday{
	{
		ID:              "ind_1",
		Name:            "Republic Day",
		Date:            "2025-01-26",
		Country:         "IN",
		Category:        domain.CategoryNational,
		Description:     "National Holiday - Celebrating Indian Constitution",
		IsPublicHoliday: true,
	},
	{
		ID:              "ind_2",
		Name:            "Independence Day",
		Date:            "2025-08-15",
		Country:         "IN",
		Category:        domain.CategoryNational,
		Description:     "National Holiday - Celebrating Independence",
		IsPublicHoliday: true,
	},
	{
		ID:              "ind_3",
		Name:            "Gandhi Jayanti",
		Date:            "2025-10-02",
		Country:         "IN",
		Category:        domain.CategoryNational,
		Description:     "National Holiday - Birth Anniversary of Mahatma Gandhi",
		IsPublicHoliday: true,
	},
	{
		ID:              "ind_4",
		Name:            "Diwali",
		Date:            "2025-10-21",
		Country:         "IN",
		Category:        domain.CategoryNational,
		Description:     "Festival of Lights",
		IsPublicHoliday: true,
	},
	{
		ID:              "ind_5",
		Name:            "Holi",
		Date:            "2025-03-14",
		Country:         "IN",
		Category:        domain.CategoryReligious,
		Description:     "Festival of Colors",
		IsPublicHoliday: false,
	},
	{
		ID:              "ind_6",
		Name:            "Christmas",
		Date:            "2025-12-25",
		Country:         "IN",
		Category:        domain.CategoryReligious,
		Description:     "Christmas Celebration",
		IsPublicHoliday: false,
	},
}
