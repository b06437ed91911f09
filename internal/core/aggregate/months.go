package aggregate

import (
	"fmt"
	"time"
)

// MonthOption is one entry of the recap month selector.
type MonthOption struct {
	Value string `json:"value"` // machine key, YYYY-MM
	Label string `json:"label"` // localized display label
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthLabel renders a month in Indonesian, e.g. "Maret 2024".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", indonesianMonths[t.Month()-1], t.Year())
}

// MonthOptions produces the trailing 12 calendar months including the one
// containing now, most recent first.
func MonthOptions(now time.Time) []MonthOption {
	options := make([]MonthOption, 0, 12)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		month := first.AddDate(0, -i, 0)
		options = append(options, MonthOption{
			Value: month.Format("2006-01"),
			Label: MonthLabel(month),
		})
	}
	return options
}

// MonthRange resolves a YYYY-MM key to its first and last calendar day.
func MonthRange(key string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}
