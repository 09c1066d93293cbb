package interviewhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewStatusHistory) (id string, err error)
	List(interviewID string) (list []dbmodels.InterviewStatusHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewStatusHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(interviewID string) (list []dbmodels.InterviewStatusHistory, err error) {
	list = []dbmodels.InterviewStatusHistory{}
	err = i.db.
		Model(dbmodels.InterviewStatusHistory{}).
		Where("interview_id = ?", interviewID).
		Order("changed_at, created_at").
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
