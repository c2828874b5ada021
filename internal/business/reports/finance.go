package reports

import (
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

// AggregateFinancialSummary totals exact-"SOLD" revenue and breaks it down
// over the 12 months of the current calendar year. The month filter is a
// client-side half-open range over the sale timestamp.
func AggregateFinancialSummary(sold []model.Property, now time.Time) model.FinancialSummary {
	var totalRevenue float64
	for _, p := range sold {
		totalRevenue += priceOf(p.Price)
	}

	var averageSalePrice float64
	if len(sold) > 0 {
		averageSalePrice = totalRevenue / float64(len(sold))
	}

	year := now.UTC().Year()
	monthlyRevenue := make(map[int]float64, 12)
	for month := 1; month <= 12; month++ {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		var sum float64
		for _, p := range sold {
			at := soldAt(p).UTC()
			if !at.Before(start) && at.Before(end) {
				sum += priceOf(p.Price)
			}
		}
		monthlyRevenue[month] = sum
	}

	return model.FinancialSummary{
		TotalRevenue:     totalRevenue,
		AverageSalePrice: averageSalePrice,
		TotalSales:       len(sold),
		MonthlyRevenue:   monthlyRevenue,
	}
}
