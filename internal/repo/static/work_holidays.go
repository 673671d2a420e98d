// Package static — статичная таблица корпоративных праздников из YAML.
package static

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Gunvolt24/holidays/internal/domain"
)

//go:embed work_holidays.yaml
var embeddedWorkHolidays []byte

// WorkHolidayValidator — проверка одной записи таблицы.
type WorkHolidayValidator interface {
	ValidateWork(h *domain.WorkHoliday) error
}

type document struct {
	Holidays []domain.WorkHoliday `yaml:"holidays"`
}

// LoadWorkHolidays — встроенная таблица, либо файл path, если он задан.
func LoadWorkHolidays(path string, validator WorkHolidayValidator) ([]domain.WorkHoliday, error) {
	raw := embeddedWorkHolidays
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read work holidays %s: %w", path, err)
		}
		raw = fileRaw
	}
	return ParseWorkHolidays(raw, validator)
}

// ParseWorkHolidays — разбирает YAML-документ {holidays: [...]}.
// Неизвестные поля, невалидные записи и повторяющиеся id — ошибка.
func ParseWorkHolidays(raw []byte, validator WorkHolidayValidator) ([]domain.WorkHoliday, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse work holidays: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Holidays))
	for i := range doc.Holidays {
		h := &doc.Holidays[i]
		if validator != nil {
			if err := validator.ValidateWork(h); err != nil {
				return nil, fmt.Errorf("work holiday #%d: %w", i, err)
			}
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("work holiday #%d: duplicate id %q", i, h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return doc.Holidays, nil
}
