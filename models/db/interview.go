package dbmodels

import "time"

// Interview is one numbered round within an application's interview
// process. Rounds are sequential from 1 up to the owning position's
// NumberOfInterviews.
type Interview struct {
	LifecycleModel
	ApplicationID string              `gorm:"type:varchar(36);index:idx_interview_round"`
	RoundNumber   int                 `gorm:"index:idx_interview_round"`
	TypeID        string              `gorm:"type:varchar(36)"`
	StatusID      string              `gorm:"type:varchar(36)"`
	Status        *Status             `gorm:"foreignKey:StatusID"`
	CreatedBy     string              `gorm:"type:varchar(36)"`
	Interviewers  []Interviewer       `gorm:"foreignKey:InterviewID"`
	Schedules     []InterviewSchedule `gorm:"foreignKey:InterviewID"`
	Feedback      []InterviewFeedback `gorm:"foreignKey:InterviewID"`
}

type Interviewer struct {
	BaseModel
	InterviewID string `gorm:"type:varchar(36);uniqueIndex:idx_interviewer"`
	EmployeeID  string `gorm:"type:varchar(36);uniqueIndex:idx_interviewer"`
}

// InterviewSchedule rows are never mutated on reschedule; a new row is
// created and the current one is the most recent non-cancelled.
type InterviewSchedule struct {
	BaseModel
	InterviewID string    `gorm:"type:varchar(36);index"`
	ScheduledAt time.Time `gorm:"index"`
	Location    string    `gorm:"type:varchar(255)"`
	MeetingLink string    `gorm:"type:varchar(512)"`
	StatusID    string    `gorm:"type:varchar(36)"`
	Status      *Status   `gorm:"foreignKey:StatusID"`
	CreatedBy   string    `gorm:"type:varchar(36)"`
}

// InterviewFeedback is unique per (interview, skill, rater);
// re-submission by the same rater overwrites to keep the scoring mean stable.
type InterviewFeedback struct {
	BaseModel
	InterviewID  string `gorm:"type:varchar(36);uniqueIndex:idx_interview_feedback"`
	SkillID      string `gorm:"type:varchar(36);uniqueIndex:idx_interview_feedback"`
	RaterID      string `gorm:"type:varchar(36);uniqueIndex:idx_interview_feedback"`
	Rating       int
	FeedbackText string
}

type InterviewStatusHistory struct {
	BaseModel
	InterviewID  string  `gorm:"type:varchar(36);index"`
	FromStatusID *string `gorm:"type:varchar(36)"`
	ToStatusID   string  `gorm:"type:varchar(36)"`
	ActorID      string  `gorm:"type:varchar(36)"`
	Note         string
	ChangedAt    time.Time `gorm:"index"`
}
