package reports

import (
	"sort"
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

// Price bands in major-currency units. The first band is closed at its upper
// bound and every boundary price resolves to the lower band.
var priceBands = []struct {
	label string
	max   float64
}{
	{"0-50L", 5_000_000},
	{"50L-1Cr", 10_000_000},
	{"1Cr-2Cr", 20_000_000},
	{"2Cr-5Cr", 50_000_000},
}

const topPriceBand = "5Cr+"

func priceBand(price float64) string {
	for _, b := range priceBands {
		if price <= b.max {
			return b.label
		}
	}
	return topPriceBand
}

func emptyPriceRanges() map[string]int {
	ranges := make(map[string]int, len(priceBands)+1)
	for _, b := range priceBands {
		ranges[b.label] = 0
	}
	ranges[topPriceBand] = 0
	return ranges
}

// AggregatePropertyAnalytics reduces published properties into status, type
// and price-band distributions plus per-type sales rollups.
func AggregatePropertyAnalytics(properties []model.Property, now time.Time) model.PropertyAnalytics {
	statusDistribution := make(map[string]int)
	typeDistribution := make(map[string]int)
	priceRanges := emptyPriceRanges()

	var sold, active, recent int
	var totalValue float64
	var typeOrder []string
	rollups := make(map[string]*model.TypeSales)
	recentCutoff := now.UTC().AddDate(0, 0, -30)

	for _, p := range properties {
		status := normalizePropertyStatus(p)
		if status == "" {
			status = "unknown"
		}
		statusDistribution[status]++
		switch status {
		case "sold":
			sold++
		case "active":
			active++
		}

		typeName := propertyTypeName(p)
		typeDistribution[typeName]++

		price := priceOf(p.Price)
		priceRanges[priceBand(price)]++
		totalValue += price

		if !p.CreatedAt.Before(recentCutoff) {
			recent++
		}

		rollup, ok := rollups[typeName]
		if !ok {
			rollup = &model.TypeSales{Type: typeName}
			rollups[typeName] = rollup
			typeOrder = append(typeOrder, typeName)
		}
		rollup.TotalSales += price
		rollup.Count++
	}

	// First-occurrence order is the stable tie-break for equal totals.
	typeSales := make([]model.TypeSales, 0, len(typeOrder))
	for _, name := range typeOrder {
		rollup := *rollups[name]
		if rollup.Count > 0 {
			rollup.AveragePrice = rollup.TotalSales / float64(rollup.Count)
		}
		typeSales = append(typeSales, rollup)
	}
	sort.SliceStable(typeSales, func(i, j int) bool {
		return typeSales[i].TotalSales > typeSales[j].TotalSales
	})

	var averagePrice float64
	if len(properties) > 0 {
		averagePrice = totalValue / float64(len(properties))
	}

	return model.PropertyAnalytics{
		TotalProperties:    len(properties),
		SoldProperties:     sold,
		ActiveProperties:   active,
		RecentProperties:   recent,
		TotalValue:         totalValue,
		StatusDistribution: statusDistribution,
		TypeDistribution:   typeDistribution,
		PriceRanges:        priceRanges,
		PropertyTypeSales:  typeSales,
		AveragePrice:       averagePrice,
	}
}
