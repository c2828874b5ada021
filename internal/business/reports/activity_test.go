package reports

import (
	"testing"
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActivitiesMergesAndSorts(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	var properties []model.Property
	for i := 0; i < 10; i++ {
		properties = append(properties, model.Property{
			Name:           "P",
			PropertyStatus: "active",
			CreatedAt:      base.Add(time.Duration(2*i) * time.Hour),
		})
	}
	var leads []model.Lead
	for i := 0; i < 10; i++ {
		leads = append(leads, model.Lead{
			FullName:  "L",
			CreatedAt: base.Add(time.Duration(2*i+1) * time.Hour),
		})
	}

	activities := BuildActivities(properties, leads)

	require.Len(t, activities, 15)
	for i := 1; i < len(activities); i++ {
		assert.True(t, !activities[i-1].Time.Before(activities[i].Time),
			"activities must be sorted by time descending")
	}
}

func TestBuildActivitiesPropertyTitles(t *testing.T) {
	properties := []model.Property{
		{Name: "Lake View", PropertyStatus: "SOLD", PropertyType: &model.PropertyType{TypeName: "Villa"}},
		{Name: "Hill Side", PropertyStatus: "Sold"}, // not the exact literal
	}

	activities := BuildActivities(properties, nil)

	require.Len(t, activities, 2)
	byName := map[string]model.Activity{}
	for _, a := range activities {
		byName[a.Subtitle] = a
	}
	assert.Equal(t, "Property Sold", byName["Lake View"].Title)
	assert.Equal(t, "Villa - SOLD", byName["Lake View"].Description)
	assert.Equal(t, "Property Listed", byName["Hill Side"].Title)
	assert.Equal(t, "Property - Sold", byName["Hill Side"].Description)
}

func TestBuildActivitiesLeadShape(t *testing.T) {
	leads := []model.Lead{
		{
			FullName:        "Asha Verma",
			LeadDesignation: "buyer",
			LeadStatus:      map[string]any{"name": "contacted"},
			CreatedAt:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	activities := BuildActivities(nil, leads)

	require.Len(t, activities, 1)
	a := activities[0]
	assert.Equal(t, "lead", a.Type)
	assert.Equal(t, "New Lead Added", a.Title)
	assert.Equal(t, "Asha Verma - buyer", a.Subtitle)
	assert.Equal(t, "Lead status: contacted", a.Description)
}

func TestBuildActivitiesEmpty(t *testing.T) {
	assert.Empty(t, BuildActivities(nil, nil))
}
