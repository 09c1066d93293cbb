package dbmodels

type Skill struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}

type Qualification struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}

type Job struct {
	LifecycleModel
	Title          string `gorm:"type:varchar(255)"`
	Description    string
	StatusID       string             `gorm:"type:varchar(36);index"`
	Skills         []JobSkill         `gorm:"foreignKey:JobID"`
	Qualifications []JobQualification `gorm:"foreignKey:JobID"`
}

type JobSkill struct {
	BaseModel
	JobID   string `gorm:"type:varchar(36);uniqueIndex:idx_job_skill"`
	SkillID string `gorm:"type:varchar(36);uniqueIndex:idx_job_skill"`
	Skill   *Skill `gorm:"foreignKey:SkillID"`
}

type JobQualification struct {
	BaseModel
	JobID           string         `gorm:"type:varchar(36);uniqueIndex:idx_job_qualification"`
	QualificationID string         `gorm:"type:varchar(36);uniqueIndex:idx_job_qualification"`
	Qualification   *Qualification `gorm:"foreignKey:QualificationID"`
	MinGrade        int            // minimum grade to count the qualification as satisfied, 0 = any
}

// Position is one hiring slot under a job. NumberOfInterviews caps the
// interview rounds per application, ReviewerID is the assigned screener.
type Position struct {
	LifecycleModel
	JobID              string `gorm:"type:varchar(36);index"`
	Job                *Job   `gorm:"foreignKey:JobID"`
	Title              string `gorm:"type:varchar(255)"`
	StatusID           string `gorm:"type:varchar(36)"`
	NumberOfInterviews int
	MinExperienceYears float64
	ReviewerID         *string `gorm:"type:varchar(36)"`
}
