package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	reportingstore "ats-backend/lib/reporting/store"
	reportapimodels "ats-backend/models/api/report"
)

func TestConversionRates(t *testing.T) {
	t.Run(`adjacent stage rates`, func(t *testing.T) {
		funnel := []reportapimodels.FunnelRow{
			{StatusCode: "applied", Total: 100},
			{StatusCode: "screening", Total: 50},
			{StatusCode: "shortlisted", Total: 25},
			{StatusCode: "interview", Total: 10},
			{StatusCode: "selected", Total: 2},
		}
		rates := ConversionRates(funnel)
		require.Len(t, rates, 4)
		require.Equal(t, "applied", rates[0].FromStatus)
		require.Equal(t, "screening", rates[0].ToStatus)
		require.Equal(t, 0.5, rates[0].Rate)
		require.Equal(t, 0.2, rates[3].Rate)
	})

	t.Run(`empty upstream stage yields zero rate`, func(t *testing.T) {
		funnel := []reportapimodels.FunnelRow{
			{StatusCode: "applied", Total: 0},
			{StatusCode: "screening", Total: 0},
		}
		rates := ConversionRates(funnel)
		require.Len(t, rates, 1)
		require.Equal(t, 0.0, rates[0].Rate)
	})

	t.Run(`single stage has no conversions`, func(t *testing.T) {
		funnel := []reportapimodels.FunnelRow{{StatusCode: "applied", Total: 10}}
		require.Empty(t, ConversionRates(funnel))
	})
}

func TestTimeToHire(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`no hires`, func(t *testing.T) {
		view := TimeToHire(nil)
		require.Equal(t, int64(0), view.Hired)
		require.Equal(t, 0.0, view.AvgDays)
	})

	t.Run(`aggregates in days`, func(t *testing.T) {
		list := []reportingstore.DurationRow{
			{AppliedAt: base, ReachedAt: base.AddDate(0, 0, 10)},
			{AppliedAt: base, ReachedAt: base.AddDate(0, 0, 20)},
			{AppliedAt: base, ReachedAt: base.AddDate(0, 0, 30)},
		}
		view := TimeToHire(list)
		require.Equal(t, int64(3), view.Hired)
		require.Equal(t, 20.0, view.AvgDays)
		require.Equal(t, 10.0, view.MinDays)
		require.Equal(t, 30.0, view.MaxDays)
	})

	t.Run(`clock skew clamps at zero`, func(t *testing.T) {
		list := []reportingstore.DurationRow{
			{AppliedAt: base, ReachedAt: base.Add(-time.Hour)},
		}
		view := TimeToHire(list)
		require.Equal(t, 0.0, view.MinDays)
		require.Equal(t, 0.0, view.MaxDays)
	})
}
