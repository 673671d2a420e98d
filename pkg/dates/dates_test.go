package dates_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/holidays/pkg/dates"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want dates.Info
	}{
		{"2025-03-15", dates.Info{Date: "2025-03-15", DayName: "Saturday", IsWeekend: true, ISOWeek: 11}},
		{"2025-03-17", dates.Info{Date: "2025-03-17", DayName: "Monday", IsWeekend: false, ISOWeek: 12}},
		{"2025-12-29", dates.Info{Date: "2025-12-29", DayName: "Monday", IsWeekend: false, ISOWeek: 1}},
		{"2021-01-03", dates.Info{Date: "2021-01-03", DayName: "Sunday", IsWeekend: true, ISOWeek: 53}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := dates.Describe(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "2025-3-1", "15.03.2025", "2025-02-30"} {
		_, err := dates.Parse(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, dates.ErrBadDate), in)
	}
}
