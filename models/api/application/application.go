package applicationapimodels

import (
	"time"

	"ats-backend/lib/utils/apperrors"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type StatusChangeRequest struct {
	StatusID string `json:"status_id"`
	Note     string `json:"note"`
}

func (r StatusChangeRequest) Validate() error {
	if r.StatusID == "" {
		return apperrors.InvalidArgument("status id is required")
	}
	return nil
}

type BulkStatusChangeRequest struct {
	ApplicationIDs []string `json:"application_ids"`
	StatusID       string   `json:"status_id"`
	Comment        string   `json:"comment"`
}

func (r BulkStatusChangeRequest) Validate() error {
	if len(r.ApplicationIDs) == 0 {
		return apperrors.InvalidArgument("application ids are required")
	}
	if r.StatusID == "" {
		return apperrors.InvalidArgument("status id is required")
	}
	return nil
}

// BulkResult is the structured partial-success report of a bulk
// transition: one bad id never aborts the batch.
type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

func (r BulkResult) SucceededCount() int {
	return len(r.Succeeded)
}

type ApplicationView struct {
	ID              string     `json:"id"`
	JobID           string     `json:"job_id"`
	PositionID      string     `json:"position_id"`
	CandidateID     string     `json:"candidate_id"`
	CandidateName   string     `json:"candidate_name,omitempty"`
	StatusID        string     `json:"status_id"`
	StatusCode      string     `json:"status_code,omitempty"`
	AppliedAt       time.Time  `json:"applied_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	InterviewRounds int        `json:"interview_rounds"`
	ScreeningScore  *float64   `json:"screening_score,omitempty"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:              rec.ID,
		JobID:           rec.JobID,
		PositionID:      rec.PositionID,
		CandidateID:     rec.CandidateID,
		StatusID:        rec.StatusID,
		AppliedAt:       rec.AppliedAt,
		UpdatedAt:       rec.UpdatedAt,
		InterviewRounds: rec.InterviewRounds,
		ScreeningScore:  rec.ScreeningScore,
	}
	if rec.Status != nil {
		view.StatusCode = rec.Status.Code
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
	}
	return view
}

type HistoryFilter struct {
	apimodels.Pagination
}

type HistoryView struct {
	ID           string    `json:"id"`
	FromStatusID *string   `json:"from_status_id,omitempty"`
	ToStatusID   string    `json:"to_status_id"`
	ToStatusCode string    `json:"to_status_code,omitempty"`
	ActorID      string    `json:"actor_id"`
	Note         string    `json:"note,omitempty"`
	ChangedAt    time.Time `json:"changed_at"`
}

func HistoryConvert(rec dbmodels.ApplicationStatusHistory) HistoryView {
	view := HistoryView{
		ID:           rec.ID,
		FromStatusID: rec.FromStatusID,
		ToStatusID:   rec.ToStatusID,
		ActorID:      rec.ActorID,
		Note:         rec.Note,
		ChangedAt:    rec.ChangedAt,
	}
	if rec.ToStatus != nil {
		view.ToStatusCode = rec.ToStatus.Code
	}
	return view
}

type CommentView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func CommentConvert(rec dbmodels.Comment) CommentView {
	return CommentView{
		ID:        rec.ID,
		AuthorID:  rec.AuthorID,
		Body:      rec.Body,
		CreatedAt: rec.CreatedAt,
	}
}
