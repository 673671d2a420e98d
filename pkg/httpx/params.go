package httpx

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Коды ошибок разбора query-параметров.
const (
	CodeInvalidCountry    = "INVALID_COUNTRY"
	CodeInvalidYearRange  = "INVALID_YEAR_RANGE"
	CodeInvalidMonthRange = "INVALID_MONTH_RANGE"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
)

// QueryError — ошибка разбора запроса с кодом для ответа клиенту.
type QueryError struct {
	Code    string
	Message string
}

func (e *QueryError) Error() string { return e.Code + ": " + e.Message }

// HolidayQuery — ?country=&year=&month=
type HolidayQuery struct {
	Country string `form:"country" binding:"required,len=2,alpha"`
	Year    int    `form:"year"    binding:"required,min=1900,max=2100"`
	Month   int    `form:"month"   binding:"required,min=1,max=12"`
}

// HolidayRangeQuery — ?country=&year=&startMonth=&endMonth=
type HolidayRangeQuery struct {
	Country    string `form:"country"    binding:"required,len=2,alpha"`
	Year       int    `form:"year"       binding:"required,min=1900,max=2100"`
	StartMonth int    `form:"startMonth" binding:"required,min=1,max=12"`
	EndMonth   int    `form:"endMonth"   binding:"required,min=1,max=12"`
}

// WorkMonthQuery — ?year=&month=[&department=]
type WorkMonthQuery struct {
	Year       int    `form:"year"       binding:"required,min=1900,max=2100"`
	Month      int    `form:"month"      binding:"required,min=1,max=12"`
	Department string `form:"department"`
}

// WorkRangeQuery — ?year=&startMonth=&endMonth=[&department=]
type WorkRangeQuery struct {
	Year       int    `form:"year"       binding:"required,min=1900,max=2100"`
	StartMonth int    `form:"startMonth" binding:"required,min=1,max=12"`
	EndMonth   int    `form:"endMonth"   binding:"required,min=1,max=12"`
	Department string `form:"department"`
}

// DateQuery — ?date=YYYY-MM-DD[&department=]
type DateQuery struct {
	Date       string `form:"date"       binding:"required,datetime=2006-01-02"`
	Department string `form:"department"`
}

// сообщение и код по полю структуры; порядок проверки задаёт порядок полей.
var fieldErrors = map[string]QueryError{
	"Country":    {CodeInvalidCountry, "country must be a 2-letter ISO country code"},
	"Year":       {CodeInvalidYearRange, "year must be between 1900 and 2100"},
	"Month":      {CodeInvalidMonthRange, "month must be between 1 and 12"},
	"StartMonth": {CodeInvalidMonthRange, "startMonth must be between 1 and 12"},
	"EndMonth":   {CodeInvalidMonthRange, "endMonth must be between 1 and 12"},
	"Date":       {CodeInvalidDateFormat, "date must be in YYYY-MM-DD format"},
}

// числовые query-параметры и поля, к которым они относятся.
var numericParams = []struct{ param, field string }{
	{"year", "Year"},
	{"month", "Month"},
	{"startMonth", "StartMonth"},
	{"endMonth", "EndMonth"},
}

// ParseHolidayQuery — разбирает и проверяет запрос праздников за месяц; страна в верхнем регистре.
func ParseHolidayQuery(c *gin.Context) (HolidayQuery, error) {
	var q HolidayQuery
	if err := bindQuery(c, &q); err != nil {
		return HolidayQuery{}, err
	}
	q.Country = strings.ToUpper(q.Country)
	return q, nil
}

// ParseHolidayRangeQuery — как ParseHolidayQuery, плюс startMonth <= endMonth.
func ParseHolidayRangeQuery(c *gin.Context) (HolidayRangeQuery, error) {
	var q HolidayRangeQuery
	if err := bindQuery(c, &q); err != nil {
		return HolidayRangeQuery{}, err
	}
	if q.StartMonth > q.EndMonth {
		return HolidayRangeQuery{}, errRange()
	}
	q.Country = strings.ToUpper(q.Country)
	return q, nil
}

// ParseWorkMonthQuery — год и месяц корпоративных праздников.
func ParseWorkMonthQuery(c *gin.Context) (WorkMonthQuery, error) {
	var q WorkMonthQuery
	if err := bindQuery(c, &q); err != nil {
		return WorkMonthQuery{}, err
	}
	return q, nil
}

// ParseWorkRangeQuery — год и диапазон месяцев корпоративных праздников.
func ParseWorkRangeQuery(c *gin.Context) (WorkRangeQuery, error) {
	var q WorkRangeQuery
	if err := bindQuery(c, &q); err != nil {
		return WorkRangeQuery{}, err
	}
	if q.StartMonth > q.EndMonth {
		return WorkRangeQuery{}, errRange()
	}
	return q, nil
}

// ParseDateQuery — дата в формате YYYY-MM-DD.
func ParseDateQuery(c *gin.Context) (DateQuery, error) {
	var q DateQuery
	if err := bindQuery(c, &q); err != nil {
		return DateQuery{}, err
	}
	return q, nil
}

// Months — последовательность месяцев [start..end].
func Months(start, end int) []int {
	if start > end {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for m := start; m <= end; m++ {
		out = append(out, m)
	}
	return out
}

// HasAnyQuery — задан ли хотя бы один из параметров.
func HasAnyQuery(c *gin.Context, keys ...string) bool {
	for _, k := range keys {
		if _, ok := c.GetQuery(k); ok {
			return true
		}
	}
	return false
}

func bindQuery(c *gin.Context, dst any) error {
	err := c.ShouldBindQuery(dst)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0].StructField())
	}

	// ошибка преобразования числа: ищем первый нечисловой параметр
	if field, ok := firstNonNumeric(c.Request.URL.Query()); ok {
		return fieldError(field)
	}
	return &QueryError{Code: "INVALID_QUERY", Message: err.Error()}
}

func firstNonNumeric(q url.Values) (string, bool) {
	for _, p := range numericParams {
		v, ok := q[p.param]
		if !ok || len(v) == 0 || v[0] == "" {
			continue
		}
		if _, err := strconv.Atoi(v[0]); err != nil {
			return p.field, true
		}
	}
	return "", false
}

func fieldError(field string) *QueryError {
	if e, ok := fieldErrors[field]; ok {
		return &QueryError{Code: e.Code, Message: e.Message}
	}
	return &QueryError{Code: "INVALID_QUERY", Message: fmt.Sprintf("invalid %s", field)}
}

func errRange() *QueryError {
	return &QueryError{Code: CodeInvalidRange, Message: "startMonth must be <= endMonth"}
}
