package applicationstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ats-backend/models"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	ListForScreening(statusIDs []string, filter screeningapimodels.ScreeningFilter) (list []dbmodels.JobApplication, err error)
	ListForScreeningCount(statusIDs []string, filter screeningapimodels.ScreeningFilter) (count int64, err error)
	CountByStatuses(statusIDs []string, positionIDs []string) (count int64, err error)
	StatsByStatus(from, to time.Time) (list []StatusStat, err error)
}

type StatusStat struct {
	StatusID string
	Total    int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Preload("Status").
		Preload("Candidate").
		Preload("Position").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListForScreening(statusIDs []string, filter screeningapimodels.ScreeningFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.activeByStatuses(statusIDs)
	i.addScreeningFilter(tx, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.Limit(limit).Offset(offset).
		Order("job_applications.applied_at").
		Preload("Status").
		Preload("Candidate").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListForScreeningCount(statusIDs []string, filter screeningapimodels.ScreeningFilter) (count int64, err error) {
	tx := i.activeByStatuses(statusIDs)
	i.addScreeningFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) CountByStatuses(statusIDs []string, positionIDs []string) (count int64, err error) {
	tx := i.activeByStatuses(statusIDs)
	if len(positionIDs) > 0 {
		tx.Where("job_applications.position_id in (?)", positionIDs)
	}
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) StatsByStatus(from, to time.Time) (list []StatusStat, err error) {
	list = []StatusStat{}
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Select("status_id, count(*) as total").
		Where("state = ?", models.RecordStateActive).
		Where("updated_at >= ? and updated_at < ?", from, to).
		Group("status_id").
		Find(&list).
		Error
	return list, err
}

func (i impl) activeByStatuses(statusIDs []string) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_applications.state = ?", models.RecordStateActive)
	if len(statusIDs) > 0 {
		tx.Where("job_applications.status_id in (?)", statusIDs)
	}
	return tx
}

func (i impl) addScreeningFilter(tx *gorm.DB, filter screeningapimodels.ScreeningFilter) {
	if filter.PositionID != "" {
		tx.Where("job_applications.position_id = ?", filter.PositionID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Joins("left join candidates as c on job_applications.candidate_id = c.id").
			Where("LOWER(CONCAT(c.last_name,' ', c.first_name, ' ', c.middle_name)) like ? or c.email like ?", searchValue, searchValue)
	}
}
