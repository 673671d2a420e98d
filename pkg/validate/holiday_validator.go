package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
)

// Проверка, что HolidayValidator удовлетворяет интерфейсу HolidayValidator.
var _ ports.HolidayValidator = (*HolidayValidator)(nil)

// ErrInvalidHoliday — базовая (sentinel error) ошибка валидации.
var ErrInvalidHoliday = errors.New("holiday validation failed")

// HolidayValidator — валидация праздников по тегам validate доменных структур.
type HolidayValidator struct {
	v *validator.Validate
}

// NewHolidayValidator — конструктор HolidayValidator.
// Возвращает ErrInvalidHoliday (с обёрнутой причиной) при любой проблеме.
func NewHolidayValidator() *HolidayValidator {
	return &HolidayValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate — проверяет государственный праздник.
func (hv *HolidayValidator) Validate(_ context.Context, h *domain.RegularHoliday) error {
	if h == nil {
		return fmt.Errorf("%w: праздник не может быть nil", ErrInvalidHoliday)
	}
	if err := hv.v.Struct(h); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidHoliday, describe(err))
	}
	return nil
}

// ValidateWork — проверяет корпоративный праздник: теги и словарь категорий.
func (hv *HolidayValidator) ValidateWork(h *domain.WorkHoliday) error {
	if h == nil {
		return fmt.Errorf("%w: праздник не может быть nil", ErrInvalidHoliday)
	}
	if err := hv.v.Struct(h); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidHoliday, h.ID, describe(err))
	}
	if !h.Category.Valid() {
		return fmt.Errorf("%w: %s: неизвестная категория %q", ErrInvalidHoliday, h.ID, h.Category)
	}
	return nil
}

// describe — человекочитаемое описание ошибок validator.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s не проходит правило %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s не проходит правило %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
