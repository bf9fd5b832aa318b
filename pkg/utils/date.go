package utils

import "time"

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Yesterday returns yesterday's date at midnight, server-local
func Yesterday() time.Time {
	now := time.Now()
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, now.Location())
}

// EnumerateDates lists every date in [start, end] inclusive, formatted as
// YYYY-MM-DD. An inverted range yields an empty slice.
func EnumerateDates(start, end time.Time) []string {
	if start.After(end) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(time.DateOnly))
	}

	return dates
}
