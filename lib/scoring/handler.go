package scoring

import (
	"time"

	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	applicationstore "ats-backend/lib/application/store"
	candidatestore "ats-backend/lib/candidate/store"
	positionstore "ats-backend/lib/position/store"
	scoringstore "ats-backend/lib/scoring/store"
	"ats-backend/lib/utils/apperrors"
	scoringapimodels "ats-backend/models/api/scoring"
	dbmodels "ats-backend/models/db"
)

// Provider is the automated scoring engine. Calculation is explicit and
// on-demand only; no write elsewhere in the system triggers a recompute.
type Provider interface {
	Calculate(applicationID string) (scoringapimodels.ScoreView, error)
	GetLatest(applicationID string) (scoringapimodels.ScoreView, error)
	SetConfig(positionID, actorID string, data scoringapimodels.WeightConfigData) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          scoringstore.NewInstance(db.DB),
		applicationSt:  applicationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		positionStore:  positionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          scoringstore.Provider
	applicationSt  applicationstore.Provider
	candidateStore candidatestore.Provider
	positionStore  positionstore.Provider
}

func (i impl) Calculate(applicationID string) (scoringapimodels.ScoreView, error) {
	rec, err := i.applicationSt.GetByID(applicationID)
	if err != nil {
		return scoringapimodels.ScoreView{}, err
	}
	if rec == nil {
		return scoringapimodels.ScoreView{}, apperrors.NotFound("application not found")
	}
	if rec.IsDeleted() {
		return scoringapimodels.ScoreView{}, apperrors.Conflict("application deleted")
	}

	weights, err := i.getWeights(rec.PositionID)
	if err != nil {
		return scoringapimodels.ScoreView{}, err
	}
	scores, err := i.getSubScores(*rec)
	if err != nil {
		return scoringapimodels.ScoreView{}, err
	}
	total, note := WeightedTotal(scores, weights)

	scoreRec := dbmodels.AutomatedScore{
		ApplicationID:   applicationID,
		SkillScore:      scores.Skill,
		ExperienceScore: scores.Experience,
		InterviewScore:  scores.Interview,
		TestScore:       scores.Test,
		EducationScore:  scores.Education,
		TotalScore:      total,
		Breakdown:       BuildBreakdown(scores, weights, note),
		CalculatedAt:    time.Now(),
	}
	if _, err = i.store.CreateScore(scoreRec); err != nil {
		return scoringapimodels.ScoreView{}, err
	}
	log.WithField("application_id", applicationID).
		WithField("total_score", total).
		Info("automated score calculated")
	return scoringapimodels.ScoreConvert(scoreRec), nil
}

func (i impl) GetLatest(applicationID string) (scoringapimodels.ScoreView, error) {
	rec, err := i.store.GetLatestScore(applicationID)
	if err != nil {
		return scoringapimodels.ScoreView{}, err
	}
	if rec == nil {
		return scoringapimodels.ScoreView{}, apperrors.NotFound("no score calculated for the application")
	}
	return scoringapimodels.ScoreConvert(*rec), nil
}

func (i impl) SetConfig(positionID, actorID string, data scoringapimodels.WeightConfigData) (string, error) {
	positionRec, err := i.positionStore.GetByID(positionID)
	if err != nil {
		return "", err
	}
	if positionRec == nil {
		return "", apperrors.NotFound("position not found")
	}
	rec := dbmodels.ScoringConfiguration{
		PositionID:       positionID,
		SkillWeight:      data.SkillWeight,
		ExperienceWeight: data.ExperienceWeight,
		InterviewWeight:  data.InterviewWeight,
		TestWeight:       data.TestWeight,
		EducationWeight:  data.EducationWeight,
		CreatedBy:        actorID,
	}
	id, err := i.store.SaveConfig(rec)
	if err != nil {
		return "", err
	}
	log.WithField("position_id", positionID).
		WithField("actor_id", actorID).
		Info("scoring configuration replaced")
	return id, nil
}

func (i impl) getWeights(positionID string) (Weights, error) {
	configRec, err := i.store.GetActiveConfig(positionID)
	if err != nil {
		return Weights{}, err
	}
	if configRec == nil {
		return DefaultWeights, nil
	}
	return Weights{
		Skill:      configRec.SkillWeight,
		Experience: configRec.ExperienceWeight,
		Interview:  configRec.InterviewWeight,
		Test:       configRec.TestWeight,
		Education:  configRec.EducationWeight,
	}, nil
}

func (i impl) getSubScores(rec dbmodels.JobApplication) (SubScores, error) {
	requiredSkills, err := i.positionStore.GetRequiredSkillIDs(rec.JobID)
	if err != nil {
		return SubScores{}, err
	}
	candidateSkills, err := i.candidateStore.ListSkillIDs(rec.CandidateID)
	if err != nil {
		return SubScores{}, err
	}
	candidateRec, err := i.candidateStore.GetByID(rec.CandidateID)
	if err != nil {
		return SubScores{}, err
	}
	if candidateRec == nil {
		return SubScores{}, apperrors.NotFound("candidate not found")
	}
	minYears := float64(0)
	if positionRec, err := i.positionStore.GetByID(rec.PositionID); err != nil {
		return SubScores{}, err
	} else if positionRec != nil {
		minYears = positionRec.MinExperienceYears
	}
	ratings, err := i.store.GetFeedbackRatings(rec.ID)
	if err != nil {
		return SubScores{}, err
	}
	latestTest, err := i.store.GetLatestTestScore(rec.ID)
	if err != nil {
		return SubScores{}, err
	}
	requiredQualifications, err := i.positionStore.GetRequiredQualifications(rec.JobID)
	if err != nil {
		return SubScores{}, err
	}
	completedQualifications, err := i.candidateStore.ListQualifications(rec.CandidateID)
	if err != nil {
		return SubScores{}, err
	}
	return SubScores{
		Skill:      SkillMatchScore(requiredSkills, candidateSkills),
		Experience: ExperienceScore(candidateRec.ExperienceYears, minYears),
		Interview:  InterviewScore(ratings),
		Test:       TestScore(latestTest),
		Education:  EducationScore(requiredQualifications, completedQualifications),
	}, nil
}
