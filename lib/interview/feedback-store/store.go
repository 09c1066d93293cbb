package feedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.InterviewFeedback) (id string, err error)
	List(interviewID string) (list []dbmodels.InterviewFeedback, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert overwrites an existing (interview, skill, rater) row so the
// scoring mean stays stable on re-submission.
func (i impl) Upsert(rec dbmodels.InterviewFeedback) (id string, err error) {
	existing := dbmodels.InterviewFeedback{}
	err = i.db.
		Model(&dbmodels.InterviewFeedback{}).
		Where("interview_id = ? and skill_id = ? and rater_id = ?", rec.InterviewID, rec.SkillID, rec.RaterID).
		First(&existing).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		if err = i.db.Create(&rec).Error; err != nil {
			return "", err
		}
		return rec.ID, nil
	}
	updMap := map[string]interface{}{
		"rating":        rec.Rating,
		"feedback_text": rec.FeedbackText,
	}
	err = i.db.
		Model(&dbmodels.InterviewFeedback{}).
		Where("id = ?", existing.ID).
		Updates(updMap).
		Error
	if err != nil {
		return "", err
	}
	return existing.ID, nil
}

func (i impl) List(interviewID string) (list []dbmodels.InterviewFeedback, err error) {
	list = []dbmodels.InterviewFeedback{}
	err = i.db.
		Model(dbmodels.InterviewFeedback{}).
		Where("interview_id = ?", interviewID).
		Order("created_at").
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
