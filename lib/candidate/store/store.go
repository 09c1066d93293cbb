package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	UpsertSkill(candidateID, skillID string, years float64, updatedBy string) error
	ListSkillIDs(candidateID string) (ids []string, err error)
	ListQualifications(candidateID string) (list []dbmodels.CandidateQualification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
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

// UpsertSkill is additive: skills absent from the caller's input are
// left untouched.
func (i impl) UpsertSkill(candidateID, skillID string, years float64, updatedBy string) error {
	existing := dbmodels.CandidateSkill{}
	err := i.db.
		Model(&dbmodels.CandidateSkill{}).
		Where("candidate_id = ? and skill_id = ?", candidateID, skillID).
		First(&existing).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec := dbmodels.CandidateSkill{
			CandidateID: candidateID,
			SkillID:     skillID,
			Years:       years,
			UpdatedBy:   updatedBy,
		}
		return i.db.Create(&rec).Error
	}
	updMap := map[string]interface{}{
		"years":      years,
		"updated_by": updatedBy,
	}
	return i.db.
		Model(&dbmodels.CandidateSkill{}).
		Where("id = ?", existing.ID).
		Updates(updMap).
		Error
}

func (i impl) ListSkillIDs(candidateID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.CandidateSkill{}).
		Where("candidate_id = ?", candidateID).
		Pluck("skill_id", &ids).
		Error
	return ids, err
}

func (i impl) ListQualifications(candidateID string) (list []dbmodels.CandidateQualification, err error) {
	list = []dbmodels.CandidateQualification{}
	err = i.db.
		Model(&dbmodels.CandidateQualification{}).
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	return list, err
}
