package scoringstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	GetActiveConfig(positionID string) (rec *dbmodels.ScoringConfiguration, err error)
	SaveConfig(rec dbmodels.ScoringConfiguration) (id string, err error)
	CreateScore(rec dbmodels.AutomatedScore) (id string, err error)
	GetLatestScore(applicationID string) (rec *dbmodels.AutomatedScore, err error)
	GetFeedbackRatings(applicationID string) (ratings []int, err error)
	GetLatestTestScore(applicationID string) (score *float64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetActiveConfig(positionID string) (*dbmodels.ScoringConfiguration, error) {
	rec := dbmodels.ScoringConfiguration{}
	err := i.db.
		Model(&dbmodels.ScoringConfiguration{}).
		Where("position_id = ? and active", positionID).
		Order("created_at desc").
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

// SaveConfig activates the new weight set and deactivates the previous
// one in the same transaction; old rows are never removed.
func (i impl) SaveConfig(rec dbmodels.ScoringConfiguration) (id string, err error) {
	rec.Active = true
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.ScoringConfiguration{}).
			Where("position_id = ? and active", rec.PositionID).
			Update("active", false).
			Error
		if err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateScore(rec dbmodels.AutomatedScore) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetLatestScore(applicationID string) (*dbmodels.AutomatedScore, error) {
	rec := dbmodels.AutomatedScore{}
	err := i.db.
		Model(&dbmodels.AutomatedScore{}).
		Where("application_id = ?", applicationID).
		Where("state = ?", models.RecordStateActive).
		Order("calculated_at desc").
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

func (i impl) GetFeedbackRatings(applicationID string) (ratings []int, err error) {
	ratings = []int{}
	err = i.db.
		Model(&dbmodels.InterviewFeedback{}).
		Joins("join interviews as i on interview_feedbacks.interview_id = i.id").
		Where("i.application_id = ?", applicationID).
		Where("i.state = ?", models.RecordStateActive).
		Pluck("interview_feedbacks.rating", &ratings).
		Error
	return ratings, err
}

func (i impl) GetLatestTestScore(applicationID string) (*float64, error) {
	rec := dbmodels.OnlineTestScore{}
	err := i.db.
		Model(&dbmodels.OnlineTestScore{}).
		Where("application_id = ?", applicationID).
		Order("taken_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec.Score, nil
}
