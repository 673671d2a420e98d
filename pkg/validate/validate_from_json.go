package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

var documentKeyPattern = regexp.MustCompile(`^[A-Z]{2}_\d{4}$`)

// ValidateHolidayFromJSON — валидация одного праздника из JSON.
func ValidateHolidayFromJSON(ctx context.Context, validator ports.HolidayValidator, raw []byte) (*domain.RegularHoliday, error) {
	var holiday domain.RegularHoliday
	if err := decodeStrict(raw, &holiday); err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, &holiday); err != nil {
		return nil, err
	}
	return &holiday, nil
}

// ValidateDocumentFromJSON — разбирает документ {"countries": {...}} и оставляет только валидные записи.
// Группа с некорректным ключом отбрасывается целиком.
func ValidateDocumentFromJSON(ctx context.Context, validator ports.HolidayValidator, raw []byte) (*domain.HolidayDocument, Summary, error) {
	var (
		doc domain.HolidayDocument
		res Summary
	)
	if err := decodeStrict(raw, &doc); err != nil {
		return nil, res, err
	}

	out := &domain.HolidayDocument{Countries: make(map[string][]domain.RegularHoliday, len(doc.Countries))}
	for _, key := range sortedKeys(doc.Countries) {
		group := doc.Countries[key]
		if !documentKeyPattern.MatchString(key) {
			for i := range group {
				res.reject(fmt.Sprintf("%s[%d]: ключ группы должен иметь вид CC_YYYY", key, i))
			}
			continue
		}
		valid := make([]domain.RegularHoliday, 0, len(group))
		for i := range group {
			if err := validator.Validate(ctx, &group[i]); err != nil {
				res.reject(fmt.Sprintf("%s[%d]: %v", key, i, err))
				continue
			}
			valid = append(valid, group[i])
		}
		out.Countries[key] = valid
		res.Valid += len(valid)
	}
	return out, res, nil
}

// decodeStrict — JSON без неизвестных полей и без данных после объекта.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных вне объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
