package reporting

import (
	"bytes"

	"ats-backend/db"
	statuscatalog "ats-backend/lib/dicts/status"
	xlsexport "ats-backend/lib/export/xls"
	reportingstore "ats-backend/lib/reporting/store"
	"ats-backend/models"
	reportapimodels "ats-backend/models/api/report"
)

// Provider builds read-only pipeline reports off the status history.
// Everything here is derived data; no report writes workflow state.
type Provider interface {
	Funnel(filter reportapimodels.ReportFilter) ([]reportapimodels.FunnelRow, error)
	Conversions(filter reportapimodels.ReportFilter) ([]reportapimodels.ConversionRow, error)
	TimeToHire(filter reportapimodels.ReportFilter) (reportapimodels.TimeToHireView, error)
	ExportFunnel(filter reportapimodels.ReportFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   reportingstore.NewInstance(db.DB),
		catalog: statuscatalog.Instance,
		xls:     xlsexport.Instance,
	}
}

type impl struct {
	store   reportingstore.Provider
	catalog statuscatalog.Provider
	xls     xlsexport.Provider
}

func (i impl) Funnel(filter reportapimodels.ReportFilter) ([]reportapimodels.FunnelRow, error) {
	result := make([]reportapimodels.FunnelRow, 0, len(FunnelOrder))
	for idx, code := range FunnelOrder {
		row := reportapimodels.FunnelRow{StatusCode: string(code)}
		if idx == 0 {
			count, err := i.store.AppliedCount(filter)
			if err != nil {
				return nil, err
			}
			row.Total = count
			result = append(result, row)
			continue
		}
		statusID, err := i.catalog.Resolve(models.StatusEntityApplication, string(code))
		if err != nil {
			return nil, err
		}
		count, err := i.store.ReachedCount(statusID, filter)
		if err != nil {
			return nil, err
		}
		row.Total = count
		result = append(result, row)
	}
	return result, nil
}

func (i impl) Conversions(filter reportapimodels.ReportFilter) ([]reportapimodels.ConversionRow, error) {
	funnel, err := i.Funnel(filter)
	if err != nil {
		return nil, err
	}
	return ConversionRates(funnel), nil
}

func (i impl) TimeToHire(filter reportapimodels.ReportFilter) (reportapimodels.TimeToHireView, error) {
	statusID, err := i.catalog.Resolve(models.StatusEntityApplication, string(models.ApplicationStatusSelected))
	if err != nil {
		return reportapimodels.TimeToHireView{}, err
	}
	list, err := i.store.SelectedDurations(statusID, filter)
	if err != nil {
		return reportapimodels.TimeToHireView{}, err
	}
	return TimeToHire(list), nil
}

func (i impl) ExportFunnel(filter reportapimodels.ReportFilter) (*bytes.Buffer, error) {
	funnel, err := i.Funnel(filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportFunnel(funnel, ConversionRates(funnel))
}
