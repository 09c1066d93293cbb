package interview

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ats-backend/db"
	"ats-backend/lib/application"
	applicationstore "ats-backend/lib/application/store"
	statuscatalog "ats-backend/lib/dicts/status"
	feedbackstore "ats-backend/lib/interview/feedback-store"
	interviewhistorystore "ats-backend/lib/interview/history-store"
	schedulestore "ats-backend/lib/interview/schedule-store"
	interviewstore "ats-backend/lib/interview/store"
	notificationhandler "ats-backend/lib/notification"
	positionstore "ats-backend/lib/position/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	interviewapimodels "ats-backend/models/api/interview"
	dbmodels "ats-backend/models/db"
)

// Provider drives the interview rounds of an application: round
// creation under the position cap, append-only scheduling, per-rater
// feedback and the round status graph.
type Provider interface {
	Create(actorID string, req interviewapimodels.InterviewCreateRequest) (interviewapimodels.InterviewView, error)
	Schedule(interviewID, actorID string, req interviewapimodels.ScheduleRequest) (interviewapimodels.InterviewView, error)
	RecordFeedback(interviewID, raterID string, req interviewapimodels.FeedbackRequest) (feedbackID string, err error)
	UpdateStatus(interviewID, actorID string, req interviewapimodels.StatusChangeRequest) (interviewapimodels.InterviewView, error)
	GetByID(interviewID string) (interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         interviewstore.NewInstance(db.DB),
		scheduleStore: schedulestore.NewInstance(db.DB),
		feedbackStore: feedbackstore.NewInstance(db.DB),
		historyStore:  interviewhistorystore.NewInstance(db.DB),
		applicationSt: applicationstore.NewInstance(db.DB),
		positionStore: positionstore.NewInstance(db.DB),
		catalog:       statuscatalog.Instance,
		notifier:      notificationhandler.Instance,
		tx:            dbTxRunner,
	}
}

type impl struct {
	store         interviewstore.Provider
	scheduleStore schedulestore.Provider
	feedbackStore feedbackstore.Provider
	historyStore  interviewhistorystore.Provider
	applicationSt applicationstore.Provider
	positionStore positionstore.Provider
	catalog       statuscatalog.Provider
	notifier      notificationhandler.Provider
	tx            txRunner
}

// txStores are the stores bound to one transaction.
type txStores struct {
	interview   interviewstore.Provider
	schedule    schedulestore.Provider
	history     interviewhistorystore.Provider
	application applicationstore.Provider
}

type txRunner func(fn func(s txStores) error) error

func dbTxRunner(fn func(s txStores) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(txStores{
			interview:   interviewstore.NewInstance(tx),
			schedule:    schedulestore.NewInstance(tx),
			history:     interviewhistorystore.NewInstance(tx),
			application: applicationstore.NewInstance(tx),
		})
	})
}

func (i impl) Create(actorID string, req interviewapimodels.InterviewCreateRequest) (interviewapimodels.InterviewView, error) {
	if err := req.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if err := CheckInterviewers(req.InterviewerIDs); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	applicationRec, err := i.applicationSt.GetByID(req.ApplicationID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if err = application.CheckTransitionTarget(applicationRec); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	positionRec, err := i.positionStore.GetByID(applicationRec.PositionID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if positionRec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("position not found")
	}
	maxRound, err := i.store.MaxRound(req.ApplicationID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if err = CheckRoundNumber(req.RoundNumber, maxRound, positionRec.NumberOfInterviews); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	plannedStatusID, err := i.catalog.Resolve(models.StatusEntityInterview, string(models.InterviewStatusPlanned))
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}

	rec := dbmodels.Interview{
		ApplicationID: req.ApplicationID,
		RoundNumber:   req.RoundNumber,
		TypeID:        req.TypeID,
		StatusID:      plannedStatusID,
		CreatedBy:     actorID,
	}
	err = i.tx(func(s txStores) error {
		id, err := s.interview.Create(rec)
		if err != nil {
			return err
		}
		rec.ID = id
		if err = s.interview.CreateInterviewers(id, req.InterviewerIDs); err != nil {
			return err
		}
		historyRec := dbmodels.InterviewStatusHistory{
			InterviewID: id,
			ToStatusID:  plannedStatusID,
			ActorID:     actorID,
			ChangedAt:   time.Now(),
		}
		if _, err = s.history.Create(historyRec); err != nil {
			return err
		}
		// the round counter on the application moves with the round row
		return s.application.Update(req.ApplicationID, map[string]interface{}{
			"interview_rounds": req.RoundNumber,
			"updated_by":       actorID,
		})
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	i.getLogger(rec.ID, actorID).
		WithField("application_id", req.ApplicationID).
		WithField("round_number", req.RoundNumber).
		Info("interview round created")
	return i.GetByID(rec.ID)
}

func (i impl) Schedule(interviewID, actorID string, req interviewapimodels.ScheduleRequest) (interviewapimodels.InterviewView, error) {
	if err := CheckScheduleTime(req.ScheduledAt, time.Now()); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("interview not found")
	}
	currentCode, err := i.statusCode(rec.StatusID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if currentCode == models.InterviewStatusCompleted || currentCode == models.InterviewStatusCancelled {
		return interviewapimodels.InterviewView{}, apperrors.Conflict("interview is already %s", currentCode)
	}
	scheduledStatusID, err := i.catalog.Resolve(models.StatusEntitySchedule, string(models.ScheduleStatusScheduled))
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	rescheduledStatusID, err := i.catalog.Resolve(models.StatusEntitySchedule, string(models.ScheduleStatusRescheduled))
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	cancelledStatusID, err := i.catalog.Resolve(models.StatusEntitySchedule, string(models.ScheduleStatusCancelled))
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}

	// the previous current slot is closed as rescheduled, never mutated
	// in place; the new row becomes the current slot
	err = i.tx(func(s txStores) error {
		for k := range rec.Schedules {
			schedule := rec.Schedules[len(rec.Schedules)-1-k]
			if schedule.StatusID == cancelledStatusID || schedule.StatusID == rescheduledStatusID {
				continue
			}
			if err := s.schedule.Update(schedule.ID, map[string]interface{}{"status_id": rescheduledStatusID}); err != nil {
				return err
			}
			break
		}
		_, err := s.schedule.Create(dbmodels.InterviewSchedule{
			InterviewID: interviewID,
			ScheduledAt: req.ScheduledAt,
			Location:    req.Location,
			MeetingLink: req.MeetingLink,
			StatusID:    scheduledStatusID,
			CreatedBy:   actorID,
		})
		return err
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	i.getLogger(interviewID, actorID).
		WithField("scheduled_at", req.ScheduledAt).
		Info("interview scheduled")
	i.notifier.InterviewScheduled(interviewID)
	return i.GetByID(interviewID)
}

func (i impl) RecordFeedback(interviewID, raterID string, req interviewapimodels.FeedbackRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", apperrors.NotFound("interview not found")
	}
	assigned := false
	for _, item := range rec.Interviewers {
		if item.EmployeeID == raterID {
			assigned = true
			break
		}
	}
	if !assigned {
		return "", apperrors.InvalidArgument("rater is not assigned to the interview")
	}
	feedbackID, err := i.feedbackStore.Upsert(dbmodels.InterviewFeedback{
		InterviewID:  interviewID,
		SkillID:      req.SkillID,
		RaterID:      raterID,
		Rating:       req.Rating,
		FeedbackText: req.FeedbackText,
	})
	if err != nil {
		return "", err
	}
	i.getLogger(interviewID, raterID).
		WithField("skill_id", req.SkillID).
		WithField("rating", req.Rating).
		Info("interview feedback recorded")
	return feedbackID, nil
}

func (i impl) UpdateStatus(interviewID, actorID string, req interviewapimodels.StatusChangeRequest) (interviewapimodels.InterviewView, error) {
	if !i.catalog.IsValid(models.StatusEntityInterview, req.StatusID) {
		return interviewapimodels.InterviewView{}, apperrors.InvalidArgument("unknown interview status id: %s", req.StatusID)
	}
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("interview not found")
	}
	currentCode, err := i.statusCode(rec.StatusID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	newCode, err := i.statusCode(req.StatusID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if !currentCode.IsAllowStatusChange(newCode) {
		return interviewapimodels.InterviewView{}, apperrors.Conflict("status change %s -> %s is not allowed", currentCode, newCode)
	}

	fromStatusID := rec.StatusID
	err = i.tx(func(s txStores) error {
		if err := s.interview.Update(interviewID, map[string]interface{}{"status_id": req.StatusID}); err != nil {
			return err
		}
		historyRec := dbmodels.InterviewStatusHistory{
			InterviewID:  interviewID,
			FromStatusID: &fromStatusID,
			ToStatusID:   req.StatusID,
			ActorID:      actorID,
			Note:         req.Note,
			ChangedAt:    time.Now(),
		}
		_, err := s.history.Create(historyRec)
		return err
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	i.getLogger(interviewID, actorID).
		WithField("from_status", currentCode).
		WithField("to_status", newCode).
		Info("interview status changed")
	return i.GetByID(interviewID)
}

func (i impl) GetByID(interviewID string) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("interview not found")
	}
	cancelledStatusID, err := i.catalog.Resolve(models.StatusEntitySchedule, string(models.ScheduleStatusCancelled))
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	return interviewapimodels.InterviewConvert(*rec, cancelledStatusID), nil
}

func (i impl) statusCode(statusID string) (models.InterviewStatus, error) {
	statusRec, err := i.catalog.GetByID(statusID)
	if err != nil {
		return "", err
	}
	return models.InterviewStatus(statusRec.Code), nil
}

func (i impl) getLogger(interviewID, actorID string) *log.Entry {
	return log.
		WithField("interview_id", interviewID).
		WithField("actor_id", actorID)
}
