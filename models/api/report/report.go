package reportapimodels

import "time"

type ReportFilter struct {
	JobID string    `json:"job_id"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

// FunnelRow counts distinct applications that ever reached the stage,
// derived from the append-only status history.
type FunnelRow struct {
	StatusCode string `json:"status_code"`
	Total      int64  `json:"total"`
}

type ConversionRow struct {
	FromStatus string  `json:"from_status"`
	ToStatus   string  `json:"to_status"`
	Rate       float64 `json:"rate"` // 0..1, reached(to)/reached(from)
}

type TimeToHireView struct {
	Hired   int64   `json:"hired"`
	AvgDays float64 `json:"avg_days"`
	MinDays float64 `json:"min_days"`
	MaxDays float64 `json:"max_days"`
}
