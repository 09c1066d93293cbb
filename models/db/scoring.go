package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ScoringConfiguration is the per-position weight set. Exactly one active
// row per position; replaced rows are deactivated, never deleted.
type ScoringConfiguration struct {
	BaseModel
	PositionID       string `gorm:"type:varchar(36);index"`
	SkillWeight      int
	ExperienceWeight int
	InterviewWeight  int
	TestWeight       int
	EducationWeight  int
	Active           bool `gorm:"index"`
	CreatedBy        string `gorm:"type:varchar(36)"`
}

// AutomatedScore is one on-demand calculation result. A recalculation
// inserts a new row; retrieval returns the most recent non-deleted one.
type AutomatedScore struct {
	LifecycleModel
	ApplicationID   string `gorm:"type:varchar(36);index"`
	SkillScore      float64
	ExperienceScore float64
	InterviewScore  float64
	TestScore       float64
	EducationScore  float64
	TotalScore      float64
	Breakdown       ScoreBreakdown `gorm:"type:jsonb"`
	CalculatedAt    time.Time      `gorm:"index"`
}

func (b ScoreBreakdown) Value() (driver.Value, error) {
	valueString, err := json.Marshal(b)
	return string(valueString), err
}

func (b *ScoreBreakdown) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &b); err != nil {
		return err
	}
	return nil
}

type ScoreBreakdown struct {
	Items []ScoreBreakdownItem `json:"items"`
	Note  string               `json:"note,omitempty"`
}

type ScoreBreakdownItem struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
	Weight    int     `json:"weight"`
}
