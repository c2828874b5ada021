package reports

import (
	"testing"
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateLeadAnalyticsConversion(t *testing.T) {
	leads := []model.Lead{
		{LeadStatus: "converted"},
		{LeadStatus: "new"},
		{LeadStatus: map[string]any{"name": "closed"}},
	}

	analytics := AggregateLeadAnalytics(leads)

	assert.Equal(t, 3, analytics.TotalLeads)
	assert.Equal(t, 2, analytics.ConvertedLeads)
	assert.InDelta(t, 66.67, analytics.ConversionRate, 0.01)
}

func TestAggregateLeadAnalyticsEmpty(t *testing.T) {
	analytics := AggregateLeadAnalytics(nil)

	assert.Zero(t, analytics.TotalLeads)
	assert.Zero(t, analytics.ConvertedLeads)
	assert.Zero(t, analytics.ConversionRate)
	assert.Empty(t, analytics.RecentLeadsList)
}

func TestAggregateLeadAnalyticsDistributions(t *testing.T) {
	leads := []model.Lead{
		{LeadStatus: "new", LeadDesignation: "buyer", FollowUpStatus: "pending"},
		{LeadStatus: map[string]any{"name": "new"}, LeadDesignation: "buyer", FollowUpStatus: map[string]any{"name": "done"}},
		{LeadStatus: nil, LeadDesignation: "", FollowUpStatus: nil},
	}

	analytics := AggregateLeadAnalytics(leads)

	assert.Equal(t, map[string]int{"new": 2, "unknown": 1}, analytics.StatusDistribution)
	assert.Equal(t, map[string]int{"buyer": 2, "unknown": 1}, analytics.DesignationDistribution)
	assert.Equal(t, map[string]int{"pending": 1, "done": 1, "unknown": 1}, analytics.FollowUpDistribution)
}

func TestRecentLeadsNewestFirstCappedAtFive(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var leads []model.Lead
	for i := 0; i < 8; i++ {
		leads = append(leads, model.Lead{
			ID:        string(rune('a' + i)),
			FirstName: "Lead",
			LastName:  string(rune('A' + i)),
			CreatedAt: base.AddDate(0, 0, i),
		})
	}

	analytics := AggregateLeadAnalytics(leads)

	require.Len(t, analytics.RecentLeadsList, 5)
	assert.Equal(t, 5, analytics.RecentLeads)
	for i := 1; i < len(analytics.RecentLeadsList); i++ {
		assert.True(t, !analytics.RecentLeadsList[i-1].CreatedAt.Before(analytics.RecentLeadsList[i].CreatedAt))
	}
	assert.Equal(t, "h", analytics.RecentLeadsList[0].ID)
}

func TestRecentLeadsFlattenedShape(t *testing.T) {
	leads := []model.Lead{
		{
			ID:              "lead-1",
			FirstName:       "Asha",
			LastName:        "Verma",
			Email:           "asha@example.com",
			Phone:           "9999999999",
			LeadStatus:      map[string]any{"name": "contacted"},
			LeadDesignation: "",
			CreatedAt:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	analytics := AggregateLeadAnalytics(leads)

	require.Len(t, analytics.RecentLeadsList, 1)
	recent := analytics.RecentLeadsList[0]
	assert.Equal(t, "lead-1", recent.ID)
	assert.Equal(t, "Asha Verma", recent.Name)
	assert.Equal(t, "asha@example.com", recent.Email)
	assert.Equal(t, "contacted", recent.Status)
	assert.Equal(t, "unknown", recent.Designation)
}
