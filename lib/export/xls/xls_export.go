package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	reportapimodels "ats-backend/models/api/report"
)

type Provider interface {
	ExportFunnel(funnel []reportapimodels.FunnelRow, conversions []reportapimodels.ConversionRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var funnelHeaders = []string{"Stage", "Applications reached", "Conversion from previous"}

func (i impl) ExportFunnel(funnel []reportapimodels.FunnelRow, conversions []reportapimodels.ConversionRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, funnelHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(funnel) != 0 {
		_, err = writeFunnelData(f, sheet, funnel, conversions, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Hiring funnel")
	return f.WriteToBuffer()
}

func writeFunnelData(f *excelize.File, sheet string, funnel []reportapimodels.FunnelRow, conversions []reportapimodels.ConversionRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(funnelHeaders), len(funnel)+1); err != nil {
		return row, err
	}
	rateByStage := make(map[string]float64, len(conversions))
	for _, item := range conversions {
		rateByStage[item.ToStatus] = item.Rate
	}
	for idx, item := range funnel {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.StatusCode); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Total); err != nil {
			return row, err
		}

		col++
		if idx == 0 {
			continue
		}
		rate := rateByStage[item.StatusCode]
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f%%", rate*100)); err != nil {
			return row, err
		}
	}
	return row, nil
}
