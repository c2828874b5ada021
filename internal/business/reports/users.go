package reports

import "github.com/estatedesk/crm-reports-api/pkg/model"

// AggregateUserAnalytics groups users by role and builds a per-user
// performance list in fetch order. Lead activity uses normalized status;
// sold-property counts match the stored "SOLD" literal exactly.
func AggregateUserAnalytics(users []model.User, leads []model.Lead, properties []model.Property) model.UserAnalytics {
	roleDistribution := make(map[string]int)
	performance := make([]model.UserPerformance, 0, len(users))

	for _, u := range users {
		role := u.Role.Name
		if role == "" {
			role = "unknown"
		}
		roleDistribution[role]++

		var totalLeads, activeLeads int
		for _, l := range leads {
			if l.AssignedTo != u.ID {
				continue
			}
			totalLeads++
			if normalizeStatus(l.LeadStatus) == "active" {
				activeLeads++
			}
		}

		var totalProperties, soldProperties int
		for _, p := range properties {
			if p.CreatedByUserID != u.ID {
				continue
			}
			totalProperties++
			if p.PropertyStatus == "SOLD" {
				soldProperties++
			}
		}

		performance = append(performance, model.UserPerformance{
			UserID:          u.ID,
			UserName:        userName(u),
			TotalLeads:      totalLeads,
			ActiveLeads:     activeLeads,
			TotalProperties: totalProperties,
			SoldProperties:  soldProperties,
		})
	}

	return model.UserAnalytics{
		TotalUsers:       len(users),
		RoleDistribution: roleDistribution,
		UserPerformance:  performance,
	}
}
