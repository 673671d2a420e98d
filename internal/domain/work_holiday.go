package domain

// DepartmentAll — сентинел «все отделы».
const DepartmentAll = "all"

// WorkCategory — категория корпоративного праздника/события.
type WorkCategory string

const (
	WorkCategoryCompany       WorkCategory = "company"
	WorkCategoryTeam          WorkCategory = "team"
	WorkCategoryDepartment    WorkCategory = "department"
	WorkCategoryEvent         WorkCategory = "event"
	WorkCategoryBreak         WorkCategory = "break"
	WorkCategoryCompanyEvent  WorkCategory = "company-event"
	WorkCategoryPublicHoliday WorkCategory = "public-holiday"
)

// Valid — входит ли категория в словарь.
func (c WorkCategory) Valid() bool {
	switch c {
	case WorkCategoryCompany, WorkCategoryTeam, WorkCategoryDepartment, WorkCategoryEvent,
		WorkCategoryBreak, WorkCategoryCompanyEvent, WorkCategoryPublicHoliday:
		return true
	}
	return false
}

// WorkHoliday — корпоративный праздник. Таблица статична и доступна только на чтение.
type WorkHoliday struct {
	ID          string       `json:"id"                   yaml:"id"          validate:"required"`
	Name        string       `json:"name"                 yaml:"name"        validate:"required,max=200"`
	Date        string       `json:"date"                 yaml:"date"        validate:"required,datetime=2006-01-02"`
	Department  string       `json:"department,omitempty" yaml:"department"`
	Description string       `json:"description"          yaml:"description"`
	Category    WorkCategory `json:"category"             yaml:"category"    validate:"required"`
}

// IsCompanyWide — праздник для всей компании (отдел не задан или "all").
func (h *WorkHoliday) IsCompanyWide() bool {
	return h.Department == "" || h.Department == DepartmentAll
}

// Month — месяц (1..12) из даты праздника.
func (h *WorkHoliday) Month() (int, bool) { return datePart(h.Date, 1) }

// Year — год из даты праздника.
func (h *WorkHoliday) Year() (int, bool) { return datePart(h.Date, 0) }
