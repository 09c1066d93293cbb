package models

// StatusEntity names a workflow entity owning its own status vocabulary.
type StatusEntity string

const (
	StatusEntityApplication    StatusEntity = "application"
	StatusEntityInterview      StatusEntity = "interview"
	StatusEntitySchedule       StatusEntity = "schedule"
	StatusEntityEventCandidate StatusEntity = "event_candidate"
	StatusEntityVerification   StatusEntity = "verification"
	StatusEntityPosition       StatusEntity = "position"
	StatusEntityJob            StatusEntity = "job"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusScreening   ApplicationStatus = "screening"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusOnHold      ApplicationStatus = "on_hold"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusShortlisted,
	ApplicationStatusInterview,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
	ApplicationStatusOnHold,
}

// IsTerminal reports whether no further pipeline movement is expected.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusSelected || s == ApplicationStatusRejected
}

type InterviewStatus string

const (
	InterviewStatusPlanned    InterviewStatus = "planned"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

var InterviewStatuses = []InterviewStatus{
	InterviewStatusPlanned,
	InterviewStatusInProgress,
	InterviewStatusCompleted,
	InterviewStatusCancelled,
}

// IsAllowStatusChange checks the interview round graph:
// planned -> in_progress -> completed, cancelled from planned or in_progress.
func (s InterviewStatus) IsAllowStatusChange(newStatus InterviewStatus) bool {
	switch s {
	case InterviewStatusPlanned:
		return newStatus == InterviewStatusInProgress || newStatus == InterviewStatusCancelled
	case InterviewStatusInProgress:
		return newStatus == InterviewStatusCompleted || newStatus == InterviewStatusCancelled
	}
	return false
}

type ScheduleStatus string

const (
	ScheduleStatusScheduled   ScheduleStatus = "scheduled"
	ScheduleStatusCompleted   ScheduleStatus = "completed"
	ScheduleStatusCancelled   ScheduleStatus = "cancelled"
	ScheduleStatusRescheduled ScheduleStatus = "rescheduled"
)

var ScheduleStatuses = []ScheduleStatus{
	ScheduleStatusScheduled,
	ScheduleStatusCompleted,
	ScheduleStatusCancelled,
	ScheduleStatusRescheduled,
}

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

var VerificationStatuses = []VerificationStatus{
	VerificationStatusPending,
	VerificationStatusVerified,
	VerificationStatusRejected,
}

type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusOnHold PositionStatus = "on_hold"
	PositionStatusClosed PositionStatus = "closed"
	PositionStatusFilled PositionStatus = "filled"
)

var PositionStatuses = []PositionStatus{
	PositionStatusOpen,
	PositionStatusOnHold,
	PositionStatusClosed,
	PositionStatusFilled,
}

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
	JobStatusArchived  JobStatus = "archived"
)

var JobStatuses = []JobStatus{
	JobStatusDraft,
	JobStatusPublished,
	JobStatusClosed,
	JobStatusArchived,
}

type EventCandidateStatus string

const (
	EventCandidateStatusInvited   EventCandidateStatus = "invited"
	EventCandidateStatusConfirmed EventCandidateStatus = "confirmed"
	EventCandidateStatusAttended  EventCandidateStatus = "attended"
	EventCandidateStatusNoShow    EventCandidateStatus = "no_show"
)

var EventCandidateStatuses = []EventCandidateStatus{
	EventCandidateStatusInvited,
	EventCandidateStatusConfirmed,
	EventCandidateStatusAttended,
	EventCandidateStatusNoShow,
}

// RecordState is the explicit lifecycle of a soft-deletable row.
// A deleted row is excluded from every active-pipeline query, its
// history stays queryable.
type RecordState string

const (
	RecordStateActive  RecordState = "active"
	RecordStateDeleted RecordState = "deleted"
)
