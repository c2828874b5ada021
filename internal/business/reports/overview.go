package reports

import "github.com/estatedesk/crm-reports-api/pkg/model"

// AggregateOverview partitions published properties into sold and unsold by
// normalized status and totals sales over the sold set.
func AggregateOverview(properties []model.Property, totalLeads, totalUsers int64) model.DashboardOverview {
	var sold, unsold int
	var totalSales float64

	for _, p := range properties {
		if normalizePropertyStatus(p) == "sold" {
			sold++
			totalSales += priceOf(p.Price)
		} else {
			unsold++
		}
	}

	return model.DashboardOverview{
		TotalProperties:  len(properties),
		SoldProperties:   sold,
		UnsoldProperties: unsold,
		TotalSales:       totalSales,
		TotalLeads:       totalLeads,
		TotalUsers:       totalUsers,
		// Not derivable from the current schema; the dashboard renders
		// these fields as static placeholders.
		ActiveLeads:      0,
		PendingFollowups: 0,
		AverageRating:    4.5,
	}
}
