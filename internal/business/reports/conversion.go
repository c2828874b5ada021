package reports

import "github.com/estatedesk/crm-reports-api/pkg/model"

// AggregateLeadConversion computes the global conversion rate and a
// per-designation breakdown. Unlike the lead analytics report, status
// comparison here is the raw stored string, so reference-form statuses never
// match; this mirrors how the dashboard has always counted conversions.
func AggregateLeadConversion(leads []model.Lead) model.LeadConversionReport {
	var converted int
	byDesignation := make(map[string]*model.DesignationConversion)

	for _, l := range leads {
		raw, _ := l.LeadStatus.(string)
		isRawConverted := raw == "converted" || raw == "closed"
		if isRawConverted {
			converted++
		}

		d, ok := byDesignation[l.LeadDesignation]
		if !ok {
			d = &model.DesignationConversion{}
			byDesignation[l.LeadDesignation] = d
		}
		d.Total++
		if isRawConverted {
			d.Converted++
		}
	}

	designationConversion := make(map[string]model.DesignationConversion, len(byDesignation))
	for designation, d := range byDesignation {
		if d.Total > 0 {
			d.Rate = float64(d.Converted) / float64(d.Total) * 100
		}
		designationConversion[designation] = *d
	}

	var conversionRate float64
	if len(leads) > 0 {
		conversionRate = float64(converted) / float64(len(leads)) * 100
	}

	return model.LeadConversionReport{
		TotalLeads:            len(leads),
		ConvertedLeads:        converted,
		ConversionRate:        conversionRate,
		DesignationConversion: designationConversion,
	}
}
