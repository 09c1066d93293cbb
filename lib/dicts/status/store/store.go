package statusstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	List() (list []dbmodels.Status, err error)
	GetByID(id string) (rec *dbmodels.Status, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List() (list []dbmodels.Status, err error) {
	list = []dbmodels.Status{}
	err = i.db.
		Model(dbmodels.Status{}).
		Order("entity, code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Status, error) {
	rec := dbmodels.Status{}
	err := i.db.
		Model(&dbmodels.Status{}).
		Where("id = ?", id).
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
