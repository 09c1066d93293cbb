package schedulestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewSchedule) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	List(interviewID string) (list []dbmodels.InterviewSchedule, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewSchedule) (id string, err error) {
	err = i.db.
		Omit("Status").
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
		Model(&dbmodels.InterviewSchedule{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview schedule not found")
	}
	return nil
}

func (i impl) List(interviewID string) (list []dbmodels.InterviewSchedule, err error) {
	list = []dbmodels.InterviewSchedule{}
	err = i.db.
		Model(dbmodels.InterviewSchedule{}).
		Where("interview_id = ?", interviewID).
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
