package applicationhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationStatusHistory) (id string, err error)
	List(applicationID string, filter applicationapimodels.HistoryFilter) (list []dbmodels.ApplicationStatusHistory, err error)
	ListCount(applicationID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationStatusHistory) (id string, err error) {
	err = i.db.
		Omit("ToStatus").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string, filter applicationapimodels.HistoryFilter) (list []dbmodels.ApplicationStatusHistory, err error) {
	list = []dbmodels.ApplicationStatusHistory{}
	tx := i.db.
		Model(dbmodels.ApplicationStatusHistory{}).
		Where("application_id = ?", applicationID)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	// chronological order is part of the persisted contract, reporting
	// and export depend on it
	tx.Order("changed_at, created_at")
	err = tx.Preload("ToStatus").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(applicationID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.ApplicationStatusHistory{}).
		Where("application_id = ?", applicationID).
		Count(&count).
		Error
	return count, err
}
