package screeningapimodels

import (
	"time"

	"ats-backend/lib/utils/apperrors"
	apimodels "ats-backend/models/api"
)

type ScreenResumeRequest struct {
	Score    *float64 `json:"score,omitempty"`
	Comments string   `json:"comments"`
	Approved bool     `json:"approved"`
}

func (r ScreenResumeRequest) Validate() error {
	if r.Score != nil && (*r.Score < 0 || *r.Score > 100) {
		return apperrors.InvalidArgument("screening score must be between 0 and 100")
	}
	return nil
}

type ShortlistRequest struct {
	Comments string `json:"comments"`
}

type AssignReviewerRequest struct {
	ReviewerID string `json:"reviewer_id"`
}

func (r AssignReviewerRequest) Validate() error {
	if r.ReviewerID == "" {
		return apperrors.InvalidArgument("reviewer id is required")
	}
	return nil
}

type CandidateSkillData struct {
	SkillID string  `json:"skill_id"`
	Years   float64 `json:"years"`
}

type SkillsUpdateRequest struct {
	Skills []CandidateSkillData `json:"skills"`
}

func (r SkillsUpdateRequest) Validate() error {
	if len(r.Skills) == 0 {
		return apperrors.InvalidArgument("skills are required")
	}
	for _, skill := range r.Skills {
		if skill.SkillID == "" {
			return apperrors.InvalidArgument("skill id is required")
		}
	}
	return nil
}

type ScreeningFilter struct {
	PositionID string `json:"position_id"`
	Search     string `json:"search"`
	apimodels.Pagination
}

type StatsFilter struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type StatusCount struct {
	StatusCode string `json:"status_code"`
	Total      int64  `json:"total"`
}

type ScreeningStats struct {
	From   time.Time     `json:"from"`
	To     time.Time     `json:"to"`
	Counts []StatusCount `json:"counts"`
}

type OfferRequest struct {
	DocumentURL string `json:"document_url"`
}

func (r OfferRequest) Validate() error {
	if r.DocumentURL == "" {
		return apperrors.InvalidArgument("document url is required")
	}
	return nil
}

type VerificationDecisionRequest struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
}
