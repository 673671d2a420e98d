package holidayapi

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/holidays/internal/domain"
)

const (
	maxIDLen           = 100
	defaultHolidayName = "Unknown Holiday"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// apiResponse — тело ответа holidayapi. Встречаются обе формы:
// {"holidays": [...]} и {"response": {"holidays": [...]}}.
type apiResponse struct {
	Holidays []apiHoliday `json:"holidays"`
	Response *struct {
		Holidays []apiHoliday `json:"holidays"`
	} `json:"response"`
}

type apiHoliday struct {
	Name        string          `json:"name"`
	Date        string          `json:"date"`
	Public      *bool           `json:"public"`
	Description string          `json:"description"`
	Type        json.RawMessage `json:"type"`
}

// decodeHolidays — разбирает тело ответа и нормализует записи.
// Возвращает число отброшенных записей (пустая или некорректная дата).
func decodeHolidays(body []byte, country string) ([]domain.RegularHoliday, int, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, &APIError{Kind: ErrDecode, Err: err}
	}

	raw := resp.Holidays
	if raw == nil && resp.Response != nil {
		raw = resp.Response.Holidays
	}

	out := make([]domain.RegularHoliday, 0, len(raw))
	dropped := 0
	for i := range raw {
		h, ok := normalizeHoliday(&raw[i], country)
		if !ok {
			dropped++
			continue
		}
		out = append(out, h)
	}
	return out, dropped, nil
}

// normalizeHoliday — приводит запись провайдера к domain.RegularHoliday.
func normalizeHoliday(h *apiHoliday, country string) (domain.RegularHoliday, bool) {
	if _, err := time.Parse(domain.DateLayout, h.Date); err != nil {
		return domain.RegularHoliday{}, false
	}

	name := truncateRunes(strings.TrimSpace(h.Name), domain.MaxHolidayNameLen)
	if name == "" {
		name = defaultHolidayName
	}

	national := isNational(h)
	category := domain.CategoryObservance
	if national {
		category = domain.CategoryNational
	}

	description := strings.TrimSpace(h.Description)
	if description == "" {
		description = name
	}

	return domain.RegularHoliday{
		ID:              holidayID(country, h.Date, name),
		Name:            name,
		Date:            h.Date,
		Country:         country,
		Region:          nil,
		Category:        category,
		Description:     description,
		IsPublicHoliday: national,
	}, true
}

// isNational — public == true либо любой тег типа содержит "public" или "national".
func isNational(h *apiHoliday) bool {
	if h.Public != nil && *h.Public {
		return true
	}
	for _, tag := range typeTags(h.Type) {
		tag = strings.ToLower(tag)
		if strings.Contains(tag, "public") || strings.Contains(tag, "national") {
			return true
		}
	}
	return false
}

// typeTags — поле type бывает строкой или массивом строк.
func typeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

// holidayID — детерминированный id: ext_{COUNTRY}_{date}_{имя в нижнем регистре, пробелы → _}.
func holidayID(country, date, name string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
	return truncateRunes(fmt.Sprintf("ext_%s_%s_%s", country, date, slug), maxIDLen)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
