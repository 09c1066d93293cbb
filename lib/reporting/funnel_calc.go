package reporting

import (
	reportingstore "ats-backend/lib/reporting/store"
	"ats-backend/models"
	reportapimodels "ats-backend/models/api/report"
)

// FunnelOrder is the pipeline progression the funnel and conversion
// reports are computed over. Terminal rejection and on-hold parking are
// not funnel stages.
var FunnelOrder = []models.ApplicationStatus{
	models.ApplicationStatusApplied,
	models.ApplicationStatusScreening,
	models.ApplicationStatusShortlisted,
	models.ApplicationStatusInterview,
	models.ApplicationStatusSelected,
}

// ConversionRates derives stage-to-stage rates from an ordered funnel.
// A stage nobody reached yields a zero rate for the step out of it.
func ConversionRates(funnel []reportapimodels.FunnelRow) []reportapimodels.ConversionRow {
	result := make([]reportapimodels.ConversionRow, 0, len(funnel))
	for k := 1; k < len(funnel); k++ {
		row := reportapimodels.ConversionRow{
			FromStatus: funnel[k-1].StatusCode,
			ToStatus:   funnel[k].StatusCode,
		}
		if funnel[k-1].Total > 0 {
			row.Rate = float64(funnel[k].Total) / float64(funnel[k-1].Total)
		}
		result = append(result, row)
	}
	return result
}

// TimeToHire aggregates submission-to-selection durations in days.
func TimeToHire(list []reportingstore.DurationRow) reportapimodels.TimeToHireView {
	view := reportapimodels.TimeToHireView{
		Hired: int64(len(list)),
	}
	if len(list) == 0 {
		return view
	}
	sum := float64(0)
	for k, item := range list {
		days := item.ReachedAt.Sub(item.AppliedAt).Hours() / 24
		if days < 0 {
			days = 0
		}
		sum += days
		if k == 0 || days < view.MinDays {
			view.MinDays = days
		}
		if days > view.MaxDays {
			view.MaxDays = days
		}
	}
	view.AvgDays = sum / float64(len(list))
	return view
}
