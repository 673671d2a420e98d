package usecase

import (
	"sort"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

var _ ports.WorkHolidayReadService = (*WorkHolidayService)(nil)

// WorkHolidayService — фильтры по статичной таблице корпоративных праздников.
// Сеть, кэш и TTL не используются; таблица только для чтения.
type WorkHolidayService struct {
	table []domain.WorkHoliday
	byID  map[string]int
}

// NewWorkHolidayService — сервис поверх копии таблицы. Порядок записей сохраняется.
func NewWorkHolidayService(table []domain.WorkHoliday) *WorkHolidayService {
	s := &WorkHolidayService{
		table: append([]domain.WorkHoliday(nil), table...),
		byID:  make(map[string]int, len(table)),
	}
	for i := range s.table {
		if _, dup := s.byID[s.table[i].ID]; !dup {
			s.byID[s.table[i].ID] = i
		}
	}
	return s
}

// HolidaysByMonth — праздники за год и месяц с фильтром по отделу.
func (s *WorkHolidayService) HolidaysByMonth(year, month int, department string) []domain.WorkHoliday {
	return s.filter(func(h *domain.WorkHoliday) bool {
		y, okY := h.Year()
		m, okM := h.Month()
		return okY && okM && y == year && m == month && matchesDepartment(h, department)
	})
}

// HolidaysByDate — праздники на конкретную дату (YYYY-MM-DD) с фильтром по отделу.
func (s *WorkHolidayService) HolidaysByDate(date, department string) []domain.WorkHoliday {
	return s.filter(func(h *domain.WorkHoliday) bool {
		return h.Date == date && matchesDepartment(h, department)
	})
}

// HolidaysByDateRange — праздники за месяцы [startMonth, endMonth], сгруппированные по дате.
func (s *WorkHolidayService) HolidaysByDateRange(year, startMonth, endMonth int, department string) map[string][]domain.WorkHoliday {
	byDate := make(map[string][]domain.WorkHoliday)
	for month := startMonth; month <= endMonth; month++ {
		for _, h := range s.HolidaysByMonth(year, month, department) {
			byDate[h.Date] = append(byDate[h.Date], h)
		}
	}
	return byDate
}

// HolidaysByDepartment — все праздники отдела вместе с общекорпоративными; "all" — вся таблица.
func (s *WorkHolidayService) HolidaysByDepartment(department string) []domain.WorkHoliday {
	return s.filter(func(h *domain.WorkHoliday) bool {
		return matchesDepartment(h, department)
	})
}

// HolidayByID — праздник по идентификатору.
func (s *WorkHolidayService) HolidayByID(id string) (domain.WorkHoliday, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.WorkHoliday{}, false
	}
	return s.table[i], true
}

// AllDepartments — отделы таблицы без "all", уникальные и отсортированные.
func (s *WorkHolidayService) AllDepartments() []string {
	seen := make(map[string]struct{})
	departments := make([]string, 0)
	for i := range s.table {
		h := &s.table[i]
		if h.IsCompanyWide() {
			continue
		}
		if _, ok := seen[h.Department]; ok {
			continue
		}
		seen[h.Department] = struct{}{}
		departments = append(departments, h.Department)
	}
	sort.Strings(departments)
	return departments
}

func (s *WorkHolidayService) filter(keep func(h *domain.WorkHoliday) bool) []domain.WorkHoliday {
	out := make([]domain.WorkHoliday, 0)
	for i := range s.table {
		if keep(&s.table[i]) {
			out = append(out, s.table[i])
		}
	}
	return out
}

// matchesDepartment — нестрогий фильтр: без фильтра ("" или "all"), общекорпоративная запись
// или точное совпадение отдела.
func matchesDepartment(h *domain.WorkHoliday, department string) bool {
	if department == "" || department == domain.DepartmentAll {
		return true
	}
	return h.IsCompanyWide() || h.Department == department
}
