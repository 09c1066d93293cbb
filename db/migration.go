package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	tables := []struct {
		name  string
		model interface{}
	}{
		{"Status", &dbmodels.Status{}},
		{"Skill", &dbmodels.Skill{}},
		{"Qualification", &dbmodels.Qualification{}},
		{"Job", &dbmodels.Job{}},
		{"JobSkill", &dbmodels.JobSkill{}},
		{"JobQualification", &dbmodels.JobQualification{}},
		{"Position", &dbmodels.Position{}},
		{"Candidate", &dbmodels.Candidate{}},
		{"CandidateSkill", &dbmodels.CandidateSkill{}},
		{"CandidateQualification", &dbmodels.CandidateQualification{}},
		{"OnlineTestScore", &dbmodels.OnlineTestScore{}},
		{"JobApplication", &dbmodels.JobApplication{}},
		{"ApplicationStatusHistory", &dbmodels.ApplicationStatusHistory{}},
		{"Comment", &dbmodels.Comment{}},
		{"Interview", &dbmodels.Interview{}},
		{"Interviewer", &dbmodels.Interviewer{}},
		{"InterviewSchedule", &dbmodels.InterviewSchedule{}},
		{"InterviewFeedback", &dbmodels.InterviewFeedback{}},
		{"InterviewStatusHistory", &dbmodels.InterviewStatusHistory{}},
		{"ScoringConfiguration", &dbmodels.ScoringConfiguration{}},
		{"AutomatedScore", &dbmodels.AutomatedScore{}},
		{"OfferLetter", &dbmodels.OfferLetter{}},
		{"DocumentVerification", &dbmodels.DocumentVerification{}},
	}
	for _, table := range tables {
		if err := DB.AutoMigrate(table.model); err != nil {
			return errors.Wrapf(err, "migration failed for %s", table.name)
		}
	}
	if err := seedStatusCatalog(); err != nil {
		return errors.Wrap(err, "status catalog seeding failed")
	}
	log.Info("migrations finished")
	return nil
}

// seedStatusCatalog inserts the fixed status vocabulary once per
// (entity, code) pair. Existing rows are left untouched.
func seedStatusCatalog() error {
	seeds := map[models.StatusEntity][]string{}
	for _, code := range models.ApplicationStatuses {
		seeds[models.StatusEntityApplication] = append(seeds[models.StatusEntityApplication], string(code))
	}
	for _, code := range models.InterviewStatuses {
		seeds[models.StatusEntityInterview] = append(seeds[models.StatusEntityInterview], string(code))
	}
	for _, code := range models.ScheduleStatuses {
		seeds[models.StatusEntitySchedule] = append(seeds[models.StatusEntitySchedule], string(code))
	}
	for _, code := range models.EventCandidateStatuses {
		seeds[models.StatusEntityEventCandidate] = append(seeds[models.StatusEntityEventCandidate], string(code))
	}
	for _, code := range models.VerificationStatuses {
		seeds[models.StatusEntityVerification] = append(seeds[models.StatusEntityVerification], string(code))
	}
	for _, code := range models.PositionStatuses {
		seeds[models.StatusEntityPosition] = append(seeds[models.StatusEntityPosition], string(code))
	}
	for _, code := range models.JobStatuses {
		seeds[models.StatusEntityJob] = append(seeds[models.StatusEntityJob], string(code))
	}
	for entity, codes := range seeds {
		for _, code := range codes {
			var count int64
			err := DB.Model(&dbmodels.Status{}).
				Where("entity = ? and code = ?", entity, code).
				Count(&count).
				Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			rec := dbmodels.Status{
				BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
				Entity:    entity,
				Code:      code,
				Name:      code,
			}
			if err = DB.Create(&rec).Error; err != nil {
				return errors.Wrapf(err, "seeding status %s/%s failed", entity, code)
			}
		}
	}
	return nil
}
