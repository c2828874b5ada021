package reports

import (
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

// AggregateSalesAnalytics buckets exact-"SOLD" properties into the trailing
// 12 calendar months. Buckets are pre-seeded so empty months still appear;
// sales outside the window are dropped.
func AggregateSalesAnalytics(sold []model.Property, now time.Time) model.SalesAnalytics {
	monthly := make(map[string]model.MonthlySales, 12)
	for _, key := range trailingMonthKeys(now, 12) {
		monthly[key] = model.MonthlySales{}
	}

	var totalRevenue float64
	for _, p := range sold {
		price := priceOf(p.Price)
		totalRevenue += price

		key := soldAt(p).UTC().Format(monthKeyFormat)
		bucket, ok := monthly[key]
		if !ok {
			continue
		}
		bucket.Count++
		bucket.Revenue += price
		monthly[key] = bucket
	}

	var averageSalePrice float64
	if len(sold) > 0 {
		averageSalePrice = totalRevenue / float64(len(sold))
	}

	return model.SalesAnalytics{
		TotalSales:       len(sold),
		TotalRevenue:     totalRevenue,
		AverageSalePrice: averageSalePrice,
		MonthlySales:     monthly,
	}
}
