package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

// fileSource — праздники из JSON-файла {"countries": {"CC_YYYY": [...]}}.
// Файл читается при первом обращении и хранится до конца жизни провайдера;
// неудачная загрузка не запоминается, следующий вызов читает файл заново.
type fileSource struct {
	path      string
	validator ports.HolidayValidator
	log       ports.Logger

	mu     sync.Mutex
	loaded map[string][]domain.RegularHoliday
}

func newFileSource(path string, validator ports.HolidayValidator, log ports.Logger) *fileSource {
	return &fileSource{path: path, validator: validator, log: log}
}

func (*fileSource) name() string { return string(domain.SourceFile) }

func (s *fileSource) holidays(ctx context.Context, country string, year, month int) ([]domain.RegularHoliday, error) {
	countries, err := s.countries(ctx)
	if err != nil {
		return nil, err
	}
	return filterByMonth(countries[domain.DocumentKey(country, year)], month), nil
}

func (s *fileSource) countries(ctx context.Context) (map[string][]domain.RegularHoliday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded != nil {
		return s.loaded, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataSourceUnavailable, s.path, err)
	}
	var doc domain.HolidayDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrDataSourceUnavailable, s.path, err)
	}
	if doc.Countries == nil {
		doc.Countries = map[string][]domain.RegularHoliday{}
	}

	s.loaded = s.dropInvalid(ctx, doc.Countries)
	return s.loaded, nil
}

// dropInvalid — убирает записи, не прошедшие валидацию.
func (s *fileSource) dropInvalid(ctx context.Context, countries map[string][]domain.RegularHoliday) map[string][]domain.RegularHoliday {
	if s.validator == nil {
		return countries
	}
	for key, group := range countries {
		valid := group[:0]
		for i := range group {
			if err := s.validator.Validate(ctx, &group[i]); err != nil {
				if s.log != nil {
					s.log.Warnf(ctx, "holiday file %s: skip %s[%d]: %v", s.path, key, i, err)
				}
				continue
			}
			valid = append(valid, group[i])
		}
		countries[key] = valid
	}
	return countries
}
