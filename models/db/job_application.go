package dbmodels

import "time"

// JobApplication is one candidate's application to one job. Its current
// status is always a member of the application status catalog; every
// change goes through the status machine together with a history row.
type JobApplication struct {
	LifecycleModel
	JobID           string     `gorm:"type:varchar(36);index"`
	Job             *Job       `gorm:"foreignKey:JobID"`
	PositionID      string     `gorm:"type:varchar(36);index"`
	Position        *Position  `gorm:"foreignKey:PositionID"`
	CandidateID     string     `gorm:"type:varchar(36);index"`
	Candidate       *Candidate `gorm:"foreignKey:CandidateID"`
	StatusID        string     `gorm:"type:varchar(36);index"`
	Status          *Status    `gorm:"foreignKey:StatusID"`
	AppliedAt       time.Time  `gorm:"index"`
	InterviewRounds int
	ScreeningScore  *float64
	CreatedBy       string `gorm:"type:varchar(36)"`
	UpdatedBy       string `gorm:"type:varchar(36)"`
}
