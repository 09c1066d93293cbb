package scoringapimodels

import (
	"time"

	"ats-backend/lib/utils/apperrors"
	dbmodels "ats-backend/models/db"
)

type ScoreView struct {
	ID              string                  `json:"id"`
	ApplicationID   string                  `json:"application_id"`
	SkillScore      float64                 `json:"skill_score"`
	ExperienceScore float64                 `json:"experience_score"`
	InterviewScore  float64                 `json:"interview_score"`
	TestScore       float64                 `json:"test_score"`
	EducationScore  float64                 `json:"education_score"`
	TotalScore      float64                 `json:"total_score"`
	Breakdown       dbmodels.ScoreBreakdown `json:"breakdown"`
	CalculatedAt    time.Time               `json:"calculated_at"`
}

func ScoreConvert(rec dbmodels.AutomatedScore) ScoreView {
	return ScoreView{
		ID:              rec.ID,
		ApplicationID:   rec.ApplicationID,
		SkillScore:      rec.SkillScore,
		ExperienceScore: rec.ExperienceScore,
		InterviewScore:  rec.InterviewScore,
		TestScore:       rec.TestScore,
		EducationScore:  rec.EducationScore,
		TotalScore:      rec.TotalScore,
		Breakdown:       rec.Breakdown,
		CalculatedAt:    rec.CalculatedAt,
	}
}

type WeightConfigData struct {
	SkillWeight      int `json:"skill_weight"`
	ExperienceWeight int `json:"experience_weight"`
	InterviewWeight  int `json:"interview_weight"`
	TestWeight       int `json:"test_weight"`
	EducationWeight  int `json:"education_weight"`
}

func (r WeightConfigData) Validate() error {
	for _, w := range []int{r.SkillWeight, r.ExperienceWeight, r.InterviewWeight, r.TestWeight, r.EducationWeight} {
		if w < 0 {
			return apperrors.InvalidArgument("weights must not be negative")
		}
	}
	return nil
}
