package static_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/repo/static"
	"github.com/Gunvolt24/holidays/pkg/validate"
)

func TestLoadWorkHolidays_Embedded(t *testing.T) {
	table, err := static.LoadWorkHolidays("", validate.NewHolidayValidator())
	require.NoError(t, err)
	require.Len(t, table, 13)

	require.Equal(t, "work_1", table[0].ID)
	require.Equal(t, domain.WorkCategoryCompanyEvent, table[0].Category)
	require.Equal(t, "2025-03-15", table[0].Date)
	require.True(t, table[0].IsCompanyWide())
}

func TestLoadWorkHolidays_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.yaml")
	content := "holidays:\n  - id: x1\n    name: Retro\n    date: \"2025-06-01\"\n    department: design\n    category: team\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := static.LoadWorkHolidays(path, validate.NewHolidayValidator())
	require.NoError(t, err)
	require.Len(t, table, 1)
	require.Equal(t, "design", table[0].Department)
}

func TestLoadWorkHolidays_MissingFile(t *testing.T) {
	_, err := static.LoadWorkHolidays(filepath.Join(t.TempDir(), "none.yaml"), nil)
	require.Error(t, err)
}

func TestParseWorkHolidays_Errors(t *testing.T) {
	v := validate.NewHolidayValidator()

	tests := map[string]string{
		"unknown field": "holidays:\n  - id: a\n    name: A\n    date: \"2025-01-01\"\n    category: event\n    color: red\n",
		"bad category":  "holidays:\n  - id: a\n    name: A\n    date: \"2025-01-01\"\n    category: party\n",
		"bad date":      "holidays:\n  - id: a\n    name: A\n    date: \"2025/01/01\"\n    category: event\n",
		"duplicate id": "holidays:\n  - id: a\n    name: A\n    date: \"2025-01-01\"\n    category: event\n" +
			"  - id: a\n    name: B\n    date: \"2025-01-02\"\n    category: event\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := static.ParseWorkHolidays([]byte(raw), v)
			require.Error(t, err)
		})
	}
}

func TestParseWorkHolidays_ValidatorError(t *testing.T) {
	_, err := static.ParseWorkHolidays([]byte("holidays:\n  - id: a\n    name: A\n    date: \"2025-01-01\"\n    category: event\n"), failingValidator{})
	require.ErrorIs(t, err, errRejected)
}

var errRejected = errors.New("rejected")

type failingValidator struct{}

func (failingValidator) ValidateWork(*domain.WorkHoliday) error { return errRejected }
