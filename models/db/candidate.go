package dbmodels

import "time"

type Candidate struct {
	LifecycleModel
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	MiddleName      string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(255)"`
	Email           string `gorm:"type:varchar(255)"`
	ExperienceYears float64
	Skills          []CandidateSkill         `gorm:"foreignKey:CandidateID"`
	Qualifications  []CandidateQualification `gorm:"foreignKey:CandidateID"`
}

func (c Candidate) GetFullName() string {
	name := c.LastName
	if c.FirstName != "" {
		name += " " + c.FirstName
	}
	if c.MiddleName != "" {
		name += " " + c.MiddleName
	}
	return name
}

type CandidateSkill struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_skill"`
	SkillID     string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_skill"`
	Skill       *Skill `gorm:"foreignKey:SkillID"`
	Years       float64
	UpdatedBy   string `gorm:"type:varchar(36)"`
}

type CandidateQualification struct {
	BaseModel
	CandidateID     string         `gorm:"type:varchar(36);uniqueIndex:idx_candidate_qualification"`
	QualificationID string         `gorm:"type:varchar(36);uniqueIndex:idx_candidate_qualification"`
	Qualification   *Qualification `gorm:"foreignKey:QualificationID"`
	Grade           int
}

// OnlineTestScore is written by the external assessment collaborator,
// already on the 0-100 scale. The scoring engine reads the latest row.
type OnlineTestScore struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Score         float64
	TakenAt       time.Time `gorm:"index"`
}
