package reports

import (
	"sort"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

const recentLeadLimit = 5

// AggregateLeadAnalytics reduces published leads into status, designation and
// follow-up distributions plus conversion figures and a short recency list.
func AggregateLeadAnalytics(leads []model.Lead) model.LeadAnalytics {
	statusDistribution := make(map[string]int)
	designationDistribution := make(map[string]int)
	followUpDistribution := make(map[string]int)
	var converted int

	for _, l := range leads {
		statusDistribution[resolveName(l.LeadStatus)]++
		followUpDistribution[resolveName(l.FollowUpStatus)]++

		designation := l.LeadDesignation
		if designation == "" {
			designation = "unknown"
		}
		designationDistribution[designation]++

		if isConverted(normalizeStatus(l.LeadStatus)) {
			converted++
		}
	}

	recent := recentLeads(leads, recentLeadLimit)

	var conversionRate float64
	if len(leads) > 0 {
		conversionRate = float64(converted) / float64(len(leads)) * 100
	}

	return model.LeadAnalytics{
		TotalLeads:              len(leads),
		StatusDistribution:      statusDistribution,
		DesignationDistribution: designationDistribution,
		FollowUpDistribution:    followUpDistribution,
		RecentLeads:             len(recent),
		RecentLeadsList:         recent,
		ConvertedLeads:          converted,
		ConversionRate:          conversionRate,
	}
}

func isConverted(normalized string) bool {
	return normalized == "converted" || normalized == "closed"
}

// recentLeads flattens the newest leads (by createdAt) for display.
func recentLeads(leads []model.Lead, limit int) []model.RecentLead {
	sorted := make([]model.Lead, len(leads))
	copy(sorted, leads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]model.RecentLead, 0, len(sorted))
	for _, l := range sorted {
		designation := l.LeadDesignation
		if designation == "" {
			designation = "unknown"
		}
		recent = append(recent, model.RecentLead{
			ID:          l.ID,
			Name:        leadName(l),
			Email:       l.Email,
			Phone:       l.Phone,
			Status:      resolveName(l.LeadStatus),
			Designation: designation,
			CreatedAt:   l.CreatedAt,
		})
	}
	return recent
}
