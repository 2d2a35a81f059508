package report

import (
	"log"
	"time"

	"scanreport/internal/pkg/caldate"
	"scanreport/internal/pkg/feed"
)

// FilterDay selects the records whose date falls on day, interpreted in
// loc. The filter is stable: included records keep their fetch order.
// Records with a missing date are dropped silently; records with an
// unparseable date are dropped with a warning. Neither aborts the filter.
func FilterDay(records []feed.ScanRecord, day caldate.CalendarDate, loc *time.Location) []feed.ScanRecord {
	matched := make([]feed.ScanRecord, 0, len(records))

	for _, r := range records {
		if r.Date == "" {
			continue
		}

		d, err := caldate.ParseDate(r.Date, loc)
		if err != nil {
			log.Printf("Warning: skipping record with unparseable date %q (item %q)", r.Date, r.Item)
			continue
		}

		if d == day {
			matched = append(matched, r)
		}
	}

	return matched
}
