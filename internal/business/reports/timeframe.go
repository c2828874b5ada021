package reports

import (
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

const monthKeyFormat = "2006-01"

// weekStart returns the Monday of the week containing now, at midnight UTC.
// The arithmetic is currentDay - dayIndex + 1 with Sunday as index 0, so on
// Sundays it lands on the following Monday. The dashboard frontend has always
// expected exactly this behavior.
func weekStart(now time.Time) time.Time {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, 1-int(now.Weekday()))
}

// monthStart returns the first instant (UTC) of the month monthsBack months
// before the month containing now.
func monthStart(now time.Time, monthsBack int) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -monthsBack, 0)
}

// trailingMonthKeys returns the YYYY-MM keys of the n months ending at the
// month containing now, current month first.
func trailingMonthKeys(now time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, monthStart(now, i).Format(monthKeyFormat))
	}
	return keys
}

// soldAt is the timestamp a sale is attributed to: the update time, falling
// back to creation time for documents that were never updated.
func soldAt(p model.Property) time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
