//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

// --- Бенчмарки ---

// Праздники за месяц из «кэша» — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetHolidays(b *testing.B) {
	h := NewHandler(svcStatic{list: makeHolidays(5)}, workStatic{}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	const path = "/api/holidays?country=US&year=2025&month=1"
	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, path)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, path)
	})
}

// Потолок без маршалинга: тот же ответ, но заранее закодированный JSON
func BenchmarkHTTP_GetHolidays_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(gin.H{"data": makeHolidays(5)})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/holidays", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/api/holidays?country=US&year=2025&month=1")
}

// Диапазон месяцев: 1/6/12 — рост аллокаций на группировке по датам
func BenchmarkHTTP_ByRange(b *testing.B) {
	for _, months := range []int{1, 6, 12} {
		b.Run("months="+strconv.Itoa(months), func(b *testing.B) {
			h := NewHandler(svcStatic{list: makeHolidays(months * 2)}, workStatic{}, nopLogger{}, 2*time.Second)
			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/api/holidays/by-range?country=US&year=2025&startMonth=1&endMonth="+strconv.Itoa(months))
		})
	}
}

// Ошибочный путь (400): стоимость разбора и валидации query
func BenchmarkHTTP_BadQuery(b *testing.B) {
	h := NewHandler(svcStatic{}, workStatic{}, nopLogger{}, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/api/holidays?country=USA&year=2025&month=1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusBadRequest {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

// заранее подготовленная выборка (без аллокаций на каждом вызове)
type svcStatic struct{ list []domain.RegularHoliday }

func (s svcStatic) FetchHolidays(context.Context, string, int, int) ([]domain.RegularHoliday, error) {
	return s.list, nil
}
func (s svcStatic) FetchHolidaysForMonths(context.Context, string, int, []int) (map[string][]domain.RegularHoliday, error) {
	out := make(map[string][]domain.RegularHoliday, len(s.list))
	for i := range s.list {
		out[s.list[i].Date] = append(out[s.list[i].Date], s.list[i])
	}
	return out, nil
}
func (svcStatic) ClearCache(context.Context, string, int, int) {}
func (svcStatic) ClearAllCache(context.Context)                {}
func (svcStatic) CacheStats() ports.CacheStats                 { return ports.CacheStats{} }
func (svcStatic) Source() domain.Source                        { return domain.SourceMock }

type workStatic struct{}

func (workStatic) HolidaysByMonth(int, int, string) []domain.WorkHoliday { return nil }
func (workStatic) HolidaysByDate(string, string) []domain.WorkHoliday   { return nil }
func (workStatic) HolidaysByDateRange(int, int, int, string) map[string][]domain.WorkHoliday {
	return nil
}
func (workStatic) HolidaysByDepartment(string) []domain.WorkHoliday { return nil }
func (workStatic) HolidayByID(string) (domain.WorkHoliday, bool)    { return domain.WorkHoliday{}, false }
func (workStatic) AllDepartments() []string                         { return nil }

// --- функции-помощники ---

func makeHolidays(n int) []domain.RegularHoliday {
	out := make([]domain.RegularHoliday, 0, n)
	for i := range n {
		date := fmt.Sprintf("2025-%02d-%02d", i/2%12+1, i%28+1)
		out = append(out, domain.RegularHoliday{
			ID:              "bench_" + strconv.Itoa(i),
			Name:            "Bench Holiday " + strconv.Itoa(i),
			Date:            date,
			Country:         "US",
			Category:        domain.CategoryNational,
			Description:     "benchmark fixture",
			IsPublicHoliday: true,
		})
	}
	return out
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/api/holidays", h.getHolidays)
	r.GET("/api/holidays/by-range", h.getHolidaysByRange)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "", "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

var (
	_ ports.HolidayReadService     = svcStatic{}
	_ ports.WorkHolidayReadService = workStatic{}
)
