package reportingstore

import (
	"time"

	"gorm.io/gorm"

	"ats-backend/models"
	reportapimodels "ats-backend/models/api/report"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	AppliedCount(filter reportapimodels.ReportFilter) (count int64, err error)
	ReachedCount(statusID string, filter reportapimodels.ReportFilter) (count int64, err error)
	SelectedDurations(statusID string, filter reportapimodels.ReportFilter) (list []DurationRow, err error)
}

// DurationRow pairs an application's submission time with the moment it
// first reached the target stage.
type DurationRow struct {
	AppliedAt time.Time
	ReachedAt time.Time
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// AppliedCount is the funnel entry point: every active application in
// the window, regardless of where it moved afterwards.
func (i impl) AppliedCount(filter reportapimodels.ReportFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("state = ?", models.RecordStateActive)
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
	if !filter.From.IsZero() {
		tx.Where("applied_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		tx.Where("applied_at < ?", filter.To)
	}
	err = tx.Count(&count).Error
	return count, err
}

// ReachedCount counts distinct applications with at least one history
// row landing on the stage; an application bouncing back and forth is
// still counted once.
func (i impl) ReachedCount(statusID string, filter reportapimodels.ReportFilter) (count int64, err error) {
	tx := i.historyQuery(statusID, filter)
	err = tx.
		Distinct("application_status_histories.application_id").
		Count(&count).
		Error
	return count, err
}

func (i impl) SelectedDurations(statusID string, filter reportapimodels.ReportFilter) (list []DurationRow, err error) {
	list = []DurationRow{}
	tx := i.historyQuery(statusID, filter)
	err = tx.
		Select("a.applied_at as applied_at, min(application_status_histories.changed_at) as reached_at").
		Group("application_status_histories.application_id, a.applied_at").
		Find(&list).
		Error
	return list, err
}

func (i impl) historyQuery(statusID string, filter reportapimodels.ReportFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.ApplicationStatusHistory{}).
		Joins("join job_applications as a on application_status_histories.application_id = a.id").
		Where("application_status_histories.to_status_id = ?", statusID).
		Where("a.state = ?", models.RecordStateActive)
	if filter.JobID != "" {
		tx.Where("a.job_id = ?", filter.JobID)
	}
	if !filter.From.IsZero() {
		tx.Where("application_status_histories.changed_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		tx.Where("application_status_histories.changed_at < ?", filter.To)
	}
	return tx
}
