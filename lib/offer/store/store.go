package offerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	CreateOffer(rec dbmodels.OfferLetter) (id string, err error)
	GetOfferByApplication(applicationID string) (rec *dbmodels.OfferLetter, err error)
	CreateVerification(rec dbmodels.DocumentVerification) (id string, err error)
	GetVerificationByID(id string) (rec *dbmodels.DocumentVerification, err error)
	UpdateVerification(id string, updMap map[string]interface{}) error
	ListVerifications(applicationID string) (list []dbmodels.DocumentVerification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateOffer(rec dbmodels.OfferLetter) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetOfferByApplication(applicationID string) (*dbmodels.OfferLetter, error) {
	rec := dbmodels.OfferLetter{}
	err := i.db.
		Model(&dbmodels.OfferLetter{}).
		Where("application_id = ?", applicationID).
		Where("state = ?", models.RecordStateActive).
		Order("issued_at desc").
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

func (i impl) CreateVerification(rec dbmodels.DocumentVerification) (id string, err error) {
	err = i.db.
		Omit("Status").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetVerificationByID(id string) (*dbmodels.DocumentVerification, error) {
	rec := dbmodels.DocumentVerification{}
	err := i.db.
		Model(&dbmodels.DocumentVerification{}).
		Where("id = ?", id).
		Preload("Status").
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

func (i impl) UpdateVerification(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.DocumentVerification{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("document verification not found")
	}
	return nil
}

func (i impl) ListVerifications(applicationID string) (list []dbmodels.DocumentVerification, err error) {
	list = []dbmodels.DocumentVerification{}
	err = i.db.
		Model(dbmodels.DocumentVerification{}).
		Where("application_id = ?", applicationID).
		Where("state = ?", models.RecordStateActive).
		Order("created_at").
		Preload("Status").
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
