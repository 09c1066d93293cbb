package positionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Position, err error)
	Update(id string, updMap map[string]interface{}) error
	ListIDsByReviewer(reviewerID string) (ids []string, err error)
	GetRequiredSkillIDs(jobID string) (ids []string, err error)
	GetRequiredQualifications(jobID string) (list []dbmodels.JobQualification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
		Model(&dbmodels.Position{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Position{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("position not found")
	}
	return nil
}

func (i impl) ListIDsByReviewer(reviewerID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.Position{}).
		Where("reviewer_id = ?", reviewerID).
		Pluck("id", &ids).
		Error
	return ids, err
}

func (i impl) GetRequiredSkillIDs(jobID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.JobSkill{}).
		Where("job_id = ?", jobID).
		Pluck("skill_id", &ids).
		Error
	return ids, err
}

func (i impl) GetRequiredQualifications(jobID string) (list []dbmodels.JobQualification, err error) {
	list = []dbmodels.JobQualification{}
	err = i.db.
		Model(&dbmodels.JobQualification{}).
		Where("job_id = ?", jobID).
		Find(&list).
		Error
	return list, err
}
