package reports

import (
	"testing"
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typed(name string, price any, status string, createdAt time.Time) model.Property {
	return model.Property{
		Name:           name,
		Price:          price,
		PropertyStatus: status,
		PropertyType:   &model.PropertyType{TypeName: name + " type"},
		CreatedAt:      createdAt,
	}
}

func TestPriceBandBoundaries(t *testing.T) {
	// Boundary prices resolve to the lower band.
	assert.Equal(t, "0-50L", priceBand(0))
	assert.Equal(t, "0-50L", priceBand(5_000_000))
	assert.Equal(t, "50L-1Cr", priceBand(5_000_001))
	assert.Equal(t, "50L-1Cr", priceBand(10_000_000))
	assert.Equal(t, "1Cr-2Cr", priceBand(20_000_000))
	assert.Equal(t, "2Cr-5Cr", priceBand(50_000_000))
	assert.Equal(t, "5Cr+", priceBand(50_000_001))
}

func TestPriceRangesArePartition(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	prices := []float64{0, 1, 5_000_000, 7_500_000, 10_000_000, 15_000_000, 20_000_000, 40_000_000, 50_000_000, 90_000_000}

	var properties []model.Property
	for _, p := range prices {
		properties = append(properties, model.Property{Price: p})
	}

	analytics := AggregatePropertyAnalytics(properties, now)

	require.Len(t, analytics.PriceRanges, 5)
	var total int
	for _, n := range analytics.PriceRanges {
		total += n
	}
	assert.Equal(t, len(prices), total)
	assert.Equal(t, 3, analytics.PriceRanges["0-50L"])
	assert.Equal(t, 2, analytics.PriceRanges["50L-1Cr"])
	assert.Equal(t, 2, analytics.PriceRanges["1Cr-2Cr"])
	assert.Equal(t, 2, analytics.PriceRanges["2Cr-5Cr"])
	assert.Equal(t, 1, analytics.PriceRanges["5Cr+"])
}

func TestAggregatePropertyAnalyticsDistributions(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	properties := []model.Property{
		typed("villa", 30_000_000.0, "SOLD", now.AddDate(0, 0, -5)),
		typed("villa", 10_000_000.0, "Active", now.AddDate(0, 0, -45)),
		typed("flat", 4_000_000.0, "active", now.AddDate(0, 0, -2)),
		{Price: 1_000_000.0, PropertyStatus: "", CreatedAt: now.AddDate(0, 0, -1)},
	}

	analytics := AggregatePropertyAnalytics(properties, now)

	assert.Equal(t, 4, analytics.TotalProperties)
	assert.Equal(t, 1, analytics.SoldProperties)
	assert.Equal(t, 2, analytics.ActiveProperties)
	assert.Equal(t, 3, analytics.RecentProperties)
	assert.Equal(t, 45_000_000.0, analytics.TotalValue)
	assert.Equal(t, map[string]int{"sold": 1, "active": 2, "unknown": 1}, analytics.StatusDistribution)
	assert.Equal(t, map[string]int{"villa type": 2, "flat type": 1, "unknown": 1}, analytics.TypeDistribution)
	assert.InDelta(t, 11_250_000.0, analytics.AveragePrice, 0.001)
}

func TestPropertyTypeSalesSortedByTotal(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	properties := []model.Property{
		{Price: 1_000_000.0, PropertyType: &model.PropertyType{TypeName: "Flat"}},
		{Price: 9_000_000.0, PropertyType: &model.PropertyType{TypeName: "Villa"}},
		{Price: 3_000_000.0, PropertyType: &model.PropertyType{TypeName: "Flat"}},
	}

	analytics := AggregatePropertyAnalytics(properties, now)

	require.Len(t, analytics.PropertyTypeSales, 2)
	assert.Equal(t, "Villa", analytics.PropertyTypeSales[0].Type)
	assert.Equal(t, 9_000_000.0, analytics.PropertyTypeSales[0].TotalSales)
	assert.Equal(t, 1, analytics.PropertyTypeSales[0].Count)
	assert.Equal(t, "Flat", analytics.PropertyTypeSales[1].Type)
	assert.Equal(t, 4_000_000.0, analytics.PropertyTypeSales[1].TotalSales)
	assert.Equal(t, 2_000_000.0, analytics.PropertyTypeSales[1].AveragePrice)
}

func TestPropertyTypeSalesTieKeepsFirstSeen(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	properties := []model.Property{
		{Price: 5_000_000.0, PropertyType: &model.PropertyType{TypeName: "Plot"}},
		{Price: 5_000_000.0, PropertyType: &model.PropertyType{TypeName: "Villa"}},
	}

	analytics := AggregatePropertyAnalytics(properties, now)

	require.Len(t, analytics.PropertyTypeSales, 2)
	assert.Equal(t, "Plot", analytics.PropertyTypeSales[0].Type)
	assert.Equal(t, "Villa", analytics.PropertyTypeSales[1].Type)
}

func TestAggregatePropertyAnalyticsEmpty(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	analytics := AggregatePropertyAnalytics(nil, now)

	assert.Zero(t, analytics.TotalProperties)
	assert.Zero(t, analytics.AveragePrice)
	assert.Len(t, analytics.PriceRanges, 5)
	assert.Empty(t, analytics.PropertyTypeSales)
}
