package ports

import "github.com/Gunvolt24/holidays/internal/domain"

// WorkHolidayReadService — чтение корпоративных праздников (синхронно, без I/O).
type WorkHolidayReadService interface {
	HolidaysByMonth(year, month int, department string) []domain.WorkHoliday
	HolidaysByDate(date, department string) []domain.WorkHoliday
	HolidaysByDateRange(year, startMonth, endMonth int, department string) map[string][]domain.WorkHoliday
	HolidaysByDepartment(department string) []domain.WorkHoliday
	HolidayByID(id string) (domain.WorkHoliday, bool)
	AllDepartments() []string
}
