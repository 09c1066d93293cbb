package commentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Comment) (id string, err error)
	List(applicationID string, pagination apimodels.Pagination) (list []dbmodels.Comment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Comment) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string, pagination apimodels.Pagination) (list []dbmodels.Comment, err error) {
	list = []dbmodels.Comment{}
	page, limit := pagination.GetPage()
	offset := (page - 1) * limit
	err = i.db.
		Model(dbmodels.Comment{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Limit(limit).
		Offset(offset).
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
