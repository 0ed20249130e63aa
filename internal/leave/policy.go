package leave

import (
	"fmt"
	"time"
)

// IsWeekday: cuti hanya boleh jatuh Senin sampai Jumat (ISO 1-5).
func IsWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WeekWindow mengembalikan Senin dan Minggu dari pekan ISO yang memuat
// date, keduanya inklusif, pada tengah malam di lokasi date.
func WeekWindow(date time.Time) (monday, sunday time.Time) {
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	monday = day.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// ISOWeekKey memformat pekan ISO sebagai kunci stabil, mis. "2024-W24".
func ISOWeekKey(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
