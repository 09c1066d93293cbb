package interviewapimodels

import (
	"time"

	"ats-backend/lib/utils/apperrors"
	dbmodels "ats-backend/models/db"
)

type InterviewCreateRequest struct {
	ApplicationID  string   `json:"application_id"`
	TypeID         string   `json:"type_id"`
	RoundNumber    int      `json:"round_number"`
	InterviewerIDs []string `json:"interviewer_ids"`
}

func (r InterviewCreateRequest) Validate() error {
	if r.ApplicationID == "" {
		return apperrors.InvalidArgument("application id is required")
	}
	if r.RoundNumber < 1 {
		return apperrors.InvalidArgument("round number starts at 1")
	}
	if len(r.InterviewerIDs) == 0 {
		return apperrors.InvalidArgument("at least one interviewer is required")
	}
	return nil
}

type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    string    `json:"location"`
	MeetingLink string    `json:"meeting_link"`
}

type FeedbackRequest struct {
	SkillID      string `json:"skill_id"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text"`
}

func (r FeedbackRequest) Validate() error {
	if r.SkillID == "" {
		return apperrors.InvalidArgument("skill id is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return apperrors.InvalidArgument("rating must be between 1 and 5")
	}
	return nil
}

type StatusChangeRequest struct {
	StatusID string `json:"status_id"`
	Note     string `json:"note"`
}

type InterviewView struct {
	ID              string         `json:"id"`
	ApplicationID   string         `json:"application_id"`
	RoundNumber     int            `json:"round_number"`
	TypeID          string         `json:"type_id,omitempty"`
	StatusID        string         `json:"status_id"`
	StatusCode      string         `json:"status_code,omitempty"`
	Interviewers    []string       `json:"interviewers"`
	Schedules       []ScheduleView `json:"schedules"`
	CurrentSchedule *ScheduleView  `json:"current_schedule,omitempty"`
	Feedback        []FeedbackView `json:"feedback"`
	CreatedAt       time.Time      `json:"created_at"`
}

type ScheduleView struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    string    `json:"location,omitempty"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	StatusID    string    `json:"status_id"`
	StatusCode  string    `json:"status_code,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackView struct {
	ID           string `json:"id"`
	SkillID      string `json:"skill_id"`
	RaterID      string `json:"rater_id"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

func ScheduleConvert(rec dbmodels.InterviewSchedule) ScheduleView {
	view := ScheduleView{
		ID:          rec.ID,
		ScheduledAt: rec.ScheduledAt,
		Location:    rec.Location,
		MeetingLink: rec.MeetingLink,
		StatusID:    rec.StatusID,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Status != nil {
		view.StatusCode = rec.Status.Code
	}
	return view
}

func FeedbackConvert(rec dbmodels.InterviewFeedback) FeedbackView {
	return FeedbackView{
		ID:           rec.ID,
		SkillID:      rec.SkillID,
		RaterID:      rec.RaterID,
		Rating:       rec.Rating,
		FeedbackText: rec.FeedbackText,
	}
}

// InterviewConvert builds the round view; the current schedule is the
// most recently created non-cancelled row.
func InterviewConvert(rec dbmodels.Interview, cancelledStatusID string) InterviewView {
	view := InterviewView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		RoundNumber:   rec.RoundNumber,
		TypeID:        rec.TypeID,
		StatusID:      rec.StatusID,
		Interviewers:  make([]string, 0, len(rec.Interviewers)),
		Schedules:     make([]ScheduleView, 0, len(rec.Schedules)),
		Feedback:      make([]FeedbackView, 0, len(rec.Feedback)),
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Status != nil {
		view.StatusCode = rec.Status.Code
	}
	for _, item := range rec.Interviewers {
		view.Interviewers = append(view.Interviewers, item.EmployeeID)
	}
	for _, item := range rec.Schedules {
		view.Schedules = append(view.Schedules, ScheduleConvert(item))
	}
	for k := range rec.Schedules {
		schedule := rec.Schedules[len(rec.Schedules)-1-k]
		if schedule.StatusID == cancelledStatusID {
			continue
		}
		current := ScheduleConvert(schedule)
		view.CurrentSchedule = &current
		break
	}
	for _, item := range rec.Feedback {
		view.Feedback = append(view.Feedback, FeedbackConvert(item))
	}
	return view
}
