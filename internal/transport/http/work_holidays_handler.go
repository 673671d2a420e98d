package rest

import (
	"net/http"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/pkg/dates"
	"github.com/Gunvolt24/holidays/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// GET /api/work-holidays?year=2025&month=3[&department=Engineering]
func (h *Handler) getWorkHolidays(c *gin.Context) {
	q, err := httpx.ParseWorkMonthQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	holidays := h.work.HolidaysByMonth(q.Year, q.Month, q.Department)
	c.JSON(http.StatusOK, gin.H{
		"data": holidays,
		"meta": gin.H{
			"year":       q.Year,
			"month":      q.Month,
			"department": departmentLabel(q.Department),
			"count":      len(holidays),
		},
	})
}

// GET /api/work-holidays/by-date?date=2025-03-15[&department=Engineering]
func (h *Handler) getWorkHolidaysByDate(c *gin.Context) {
	q, err := httpx.ParseDateQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	info, err := dates.Describe(q.Date)
	if err != nil {
		writeError(c, http.StatusBadRequest, httpx.CodeInvalidDateFormat, err.Error())
		return
	}

	holidays := h.work.HolidaysByDate(q.Date, q.Department)
	c.JSON(http.StatusOK, gin.H{
		"data": holidays,
		"meta": gin.H{
			"date":       info.Date,
			"dayName":    info.DayName,
			"isWeekend":  info.IsWeekend,
			"isoWeek":    info.ISOWeek,
			"department": departmentLabel(q.Department),
			"count":      len(holidays),
		},
	})
}

// GET /api/work-holidays/by-range?year=2025&startMonth=1&endMonth=3[&department=Engineering]
func (h *Handler) getWorkHolidaysByRange(c *gin.Context) {
	q, err := httpx.ParseWorkRangeQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	byMonth := h.work.HolidaysByDateRange(q.Year, q.StartMonth, q.EndMonth, q.Department)
	total := 0
	for _, hs := range byMonth {
		total += len(hs)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": byMonth,
		"meta": gin.H{
			"year":       q.Year,
			"startMonth": q.StartMonth,
			"endMonth":   q.EndMonth,
			"department": departmentLabel(q.Department),
			"monthCount": q.EndMonth - q.StartMonth + 1,
			"totalCount": total,
		},
	})
}

// GET /api/work-holidays/departments
func (h *Handler) getDepartments(c *gin.Context) {
	deps := h.work.AllDepartments()
	c.JSON(http.StatusOK, gin.H{
		"data": deps,
		"meta": gin.H{"count": len(deps)},
	})
}

// GET /api/work-holidays/:id
func (h *Handler) getWorkHolidayByID(c *gin.Context) {
	id := c.Param("id")
	holiday, ok := h.work.HolidayByID(id)
	if !ok {
		writeError(c, http.StatusNotFound, CodeNotFound, "work holiday "+id+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": holiday})
}

func departmentLabel(dep string) string {
	if dep == "" {
		return domain.DepartmentAll
	}
	return dep
}
