package rest

import (
	"net/http"

	"github.com/Gunvolt24/holidays/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// GET /api/holidays?country=US&year=2025&month=1
func (h *Handler) getHolidays(c *gin.Context) {
	q, err := httpx.ParseHolidayQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	holidays, err := h.holidays.FetchHolidays(ctx, q.Country, q.Year, q.Month)
	if err != nil {
		h.log.Errorf(ctx, "FetchHolidays failed country=%s year=%d month=%d err=%v", q.Country, q.Year, q.Month, err)
		writeError(c, http.StatusInternalServerError, CodeInternal, "failed to fetch holidays")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": holidays,
		"meta": gin.H{
			"country": q.Country,
			"year":    q.Year,
			"month":   q.Month,
			"count":   len(holidays),
			"source":  h.holidays.Source().String(),
		},
	})
}

// GET /api/holidays/by-range?country=US&year=2025&startMonth=1&endMonth=3
func (h *Handler) getHolidaysByRange(c *gin.Context) {
	q, err := httpx.ParseHolidayRangeQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	byDate, err := h.holidays.FetchHolidaysForMonths(ctx, q.Country, q.Year, httpx.Months(q.StartMonth, q.EndMonth))
	if err != nil {
		h.log.Errorf(ctx, "FetchHolidaysForMonths failed country=%s year=%d months=%d..%d err=%v",
			q.Country, q.Year, q.StartMonth, q.EndMonth, err)
		writeError(c, http.StatusInternalServerError, CodeInternal, "failed to fetch holidays")
		return
	}

	count := 0
	for _, hs := range byDate {
		count += len(hs)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": byDate,
		"meta": gin.H{
			"country":    q.Country,
			"year":       q.Year,
			"startMonth": q.StartMonth,
			"endMonth":   q.EndMonth,
			"count":      count,
		},
	})
}

// GET /api/holidays/cache/stats
func (h *Handler) getCacheStats(c *gin.Context) {
	st := h.holidays.CacheStats()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"size":   st.Size,
			"ttlMs":  st.TTL.Milliseconds(),
			"source": h.holidays.Source().String(),
		},
	})
}

// DELETE /api/holidays/cache — весь кэш;
// DELETE /api/holidays/cache?country=US&year=2025&month=1 — один месяц.
func (h *Handler) clearCache(c *gin.Context) {
	ctx := c.Request.Context()

	if !httpx.HasAnyQuery(c, "country", "year", "month") {
		h.holidays.ClearAllCache(ctx)
		h.log.Infof(ctx, "holiday cache cleared")
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"cleared": "all"}})
		return
	}

	q, err := httpx.ParseHolidayQuery(c)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	h.holidays.ClearCache(ctx, q.Country, q.Year, q.Month)
	h.log.Infof(ctx, "holiday cache slot cleared country=%s year=%d month=%d", q.Country, q.Year, q.Month)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"cleared": "slot",
			"country": q.Country,
			"year":    q.Year,
			"month":   q.Month,
		},
	})
}
