package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	CreateInterviewers(interviewID string, employeeIDs []string) error
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Interview, err error)
	CountRounds(applicationID string) (count int64, err error)
	MaxRound(applicationID string) (round int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateInterviewers(interviewID string, employeeIDs []string) error {
	for _, employeeID := range employeeIDs {
		rec := dbmodels.Interviewer{
			InterviewID: interviewID,
			EmployeeID:  employeeID,
		}
		if err := i.db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Preload("Status").
		Preload("Interviewers").
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("interview_schedules.created_at")
		}).
		Preload("Schedules.Status").
		Preload("Feedback").
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

func (i impl) CountRounds(applicationID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Where("state = ?", models.RecordStateActive).
		Count(&count).
		Error
	return count, err
}

func (i impl) MaxRound(applicationID string) (round int, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Select("coalesce(max(round_number), 0)").
		Where("application_id = ?", applicationID).
		Where("state = ?", models.RecordStateActive).
		Scan(&round).
		Error
	return round, err
}
