package reports

import (
	"sort"

	"github.com/estatedesk/crm-reports-api/pkg/model"
)

const activityLimit = 15

// BuildActivities merges recent properties and leads into one feed sorted by
// time descending, truncated to the newest 15 entries.
func BuildActivities(properties []model.Property, leads []model.Lead) []model.Activity {
	activities := make([]model.Activity, 0, len(properties)+len(leads))

	for _, p := range properties {
		title := "Property Listed"
		if p.PropertyStatus == "SOLD" {
			title = "Property Sold"
		}
		typeName := "Property"
		if p.PropertyType != nil && p.PropertyType.TypeName != "" {
			typeName = p.PropertyType.TypeName
		}
		activities = append(activities, model.Activity{
			Type:        "property",
			Title:       title,
			Subtitle:    p.Name,
			Description: typeName + " - " + p.PropertyStatus,
			Time:        p.CreatedAt,
			Data:        p,
		})
	}

	for _, l := range leads {
		activities = append(activities, model.Activity{
			Type:        "lead",
			Title:       "New Lead Added",
			Subtitle:    leadName(l) + " - " + l.LeadDesignation,
			Description: "Lead status: " + resolveName(l.LeadStatus),
			Time:        l.CreatedAt,
			Data:        l,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	if len(activities) > activityLimit {
		activities = activities[:activityLimit]
	}
	return activities
}
