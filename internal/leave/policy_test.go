package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return d
}

func TestIsWeekday(t *testing.T) {
	cases := []struct {
		date    string
		weekday bool
	}{
		{"2024-06-10", true},  // Senin
		{"2024-06-11", true},  // Selasa
		{"2024-06-14", true},  // Jumat
		{"2024-06-15", false}, // Sabtu
		{"2024-06-16", false}, // Minggu
	}

	for _, tc := range cases {
		assert.Equal(t, tc.weekday, IsWeekday(mustDate(t, tc.date)), tc.date)
	}
}

func TestWeekWindow(t *testing.T) {
	t.Run("mid week", func(t *testing.T) {
		monday, sunday := WeekWindow(mustDate(t, "2024-06-13")) // Kamis
		assert.Equal(t, "2024-06-10", monday.Format("2006-01-02"))
		assert.Equal(t, "2024-06-16", sunday.Format("2006-01-02"))
	})

	t.Run("monday maps to itself", func(t *testing.T) {
		monday, sunday := WeekWindow(mustDate(t, "2024-06-10"))
		assert.Equal(t, "2024-06-10", monday.Format("2006-01-02"))
		assert.Equal(t, "2024-06-16", sunday.Format("2006-01-02"))
	})

	t.Run("sunday belongs to preceding monday", func(t *testing.T) {
		monday, sunday := WeekWindow(mustDate(t, "2024-06-16"))
		assert.Equal(t, "2024-06-10", monday.Format("2006-01-02"))
		assert.Equal(t, "2024-06-16", sunday.Format("2006-01-02"))
	})
}

func TestISOWeekKey(t *testing.T) {
	assert.Equal(t, "2024-W24", ISOWeekKey(mustDate(t, "2024-06-11")))
	assert.Equal(t, "2024-W24", ISOWeekKey(mustDate(t, "2024-06-16")))
	assert.Equal(t, "2024-W25", ISOWeekKey(mustDate(t, "2024-06-17")))

	// Awal Januari bisa jatuh di pekan ISO tahun sebelumnya.
	assert.Equal(t, "2020-W53", ISOWeekKey(mustDate(t, "2021-01-01")))
}
