package offerapimodels

import (
	"time"

	dbmodels "ats-backend/models/db"
)

type OfferView struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	DocumentURL   string    `json:"document_url"`
	IssuedBy      string    `json:"issued_by"`
	IssuedAt      time.Time `json:"issued_at"`
}

func OfferConvert(rec dbmodels.OfferLetter) OfferView {
	return OfferView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		DocumentURL:   rec.DocumentURL,
		IssuedBy:      rec.IssuedBy,
		IssuedAt:      rec.IssuedAt,
	}
}

type VerificationView struct {
	ID            string     `json:"id"`
	ApplicationID string     `json:"application_id"`
	DocumentURL   string     `json:"document_url"`
	StatusID      string     `json:"status_id"`
	StatusCode    string     `json:"status_code,omitempty"`
	DecidedBy     *string    `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Note          string     `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func VerificationConvert(rec dbmodels.DocumentVerification) VerificationView {
	view := VerificationView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		DocumentURL:   rec.DocumentURL,
		StatusID:      rec.StatusID,
		DecidedBy:     rec.DecidedBy,
		DecidedAt:     rec.DecidedAt,
		Note:          rec.Note,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Status != nil {
		view.StatusCode = rec.Status.Code
	}
	return view
}
