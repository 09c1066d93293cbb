package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	reportapimodels "ats-backend/models/api/report"
)

func TestExportFunnel(t *testing.T) {
	NewHandler()
	funnel := []reportapimodels.FunnelRow{
		{StatusCode: "applied", Total: 100},
		{StatusCode: "screening", Total: 40},
	}
	conversions := []reportapimodels.ConversionRow{
		{FromStatus: "applied", ToStatus: "screening", Rate: 0.4},
	}
	buf, err := Instance.ExportFunnel(funnel, conversions)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	sheet := "Hiring funnel"
	header, err := f.GetCellValue(sheet, "A1")
	require.Nil(t, err)
	require.Equal(t, "Stage", header)

	stage, err := f.GetCellValue(sheet, "A2")
	require.Nil(t, err)
	require.Equal(t, "applied", stage)

	total, err := f.GetCellValue(sheet, "B3")
	require.Nil(t, err)
	require.Equal(t, "40", total)

	rate, err := f.GetCellValue(sheet, "C3")
	require.Nil(t, err)
	require.Equal(t, "40.0%", rate)
}

func TestExportFunnelEmpty(t *testing.T) {
	NewHandler()
	buf, err := Instance.ExportFunnel(nil, nil)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Hiring funnel", "A1")
	require.Nil(t, err)
	require.Equal(t, "Stage", header)
}
