package scoring

import (
	dbmodels "ats-backend/models/db"
)

// Weights is the per-position weight set used for one calculation.
type Weights struct {
	Skill      int
	Experience int
	Interview  int
	Test       int
	Education  int
}

// DefaultWeights applies when a position has no active configuration.
var DefaultWeights = Weights{
	Skill:      30,
	Experience: 20,
	Interview:  30,
	Test:       15,
	Education:  5,
}

func (w Weights) Sum() int {
	return w.Skill + w.Experience + w.Interview + w.Test + w.Education
}

// SubScores holds the five raw dimensions, each on the 0-100 scale.
type SubScores struct {
	Skill      float64
	Experience float64
	Interview  float64
	Test       float64
	Education  float64
}

const noWeightsNote = "no weights configured"

// WeightedTotal normalizes by the weight sum at calculation time, so a
// configuration that does not add up to exactly 100 still produces a
// 0-100 total. All-zero weights yield 0 with an explanatory note.
func WeightedTotal(scores SubScores, weights Weights) (total float64, note string) {
	sum := weights.Sum()
	if sum == 0 {
		return 0, noWeightsNote
	}
	weighted := scores.Skill*float64(weights.Skill) +
		scores.Experience*float64(weights.Experience) +
		scores.Interview*float64(weights.Interview) +
		scores.Test*float64(weights.Test) +
		scores.Education*float64(weights.Education)
	return weighted / float64(sum), ""
}

// SkillMatchScore is the share of required skills the candidate has;
// a job with no required skills matches fully.
func SkillMatchScore(requiredSkillIDs, candidateSkillIDs []string) float64 {
	if len(requiredSkillIDs) == 0 {
		return 100
	}
	owned := make(map[string]struct{}, len(candidateSkillIDs))
	for _, id := range candidateSkillIDs {
		owned[id] = struct{}{}
	}
	matched := 0
	for _, id := range requiredSkillIDs {
		if _, ok := owned[id]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkillIDs)) * 100
}

// ExperienceScore compares candidate years against the position
// minimum, capped at 100.
func ExperienceScore(candidateYears, minYears float64) float64 {
	if minYears <= 0 {
		return 100
	}
	if candidateYears <= 0 {
		return 0
	}
	score := candidateYears / minYears * 100
	if score > 100 {
		return 100
	}
	return score
}

// InterviewScore is the mean feedback rating rescaled from 1-5 to 0-100.
func InterviewScore(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	mean := float64(sum) / float64(len(ratings))
	return (mean - 1) / 4 * 100
}

// TestScore passes through the latest online test result, 0 if none taken.
func TestScore(latest *float64) float64 {
	if latest == nil {
		return 0
	}
	return *latest
}

// EducationScore is the share of required qualifications the candidate
// satisfies, honoring minimum grade thresholds where set.
func EducationScore(required []dbmodels.JobQualification, completed []dbmodels.CandidateQualification) float64 {
	if len(required) == 0 {
		return 100
	}
	grades := make(map[string]int, len(completed))
	for _, item := range completed {
		if grade, ok := grades[item.QualificationID]; !ok || item.Grade > grade {
			grades[item.QualificationID] = item.Grade
		}
	}
	satisfied := 0
	for _, item := range required {
		grade, ok := grades[item.QualificationID]
		if !ok {
			continue
		}
		if item.MinGrade > 0 && grade < item.MinGrade {
			continue
		}
		satisfied++
	}
	return float64(satisfied) / float64(len(required)) * 100
}

// BuildBreakdown serializes the per-dimension explanation persisted
// next to the total.
func BuildBreakdown(scores SubScores, weights Weights, note string) dbmodels.ScoreBreakdown {
	return dbmodels.ScoreBreakdown{
		Items: []dbmodels.ScoreBreakdownItem{
			{Dimension: "skill_match", Score: scores.Skill, Weight: weights.Skill},
			{Dimension: "experience", Score: scores.Experience, Weight: weights.Experience},
			{Dimension: "interview", Score: scores.Interview, Weight: weights.Interview},
			{Dimension: "test", Score: scores.Test, Weight: weights.Test},
			{Dimension: "education", Score: scores.Education, Weight: weights.Education},
		},
		Note: note,
	}
}
