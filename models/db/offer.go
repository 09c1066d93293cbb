package dbmodels

import "time"

// OfferLetter stores only the URL produced by the rendering/storage
// collaborators; the core never reads or writes the document itself.
type OfferLetter struct {
	LifecycleModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	DocumentURL   string `gorm:"type:varchar(512)"`
	IssuedBy      string `gorm:"type:varchar(36)"`
	IssuedAt      time.Time
}

type DocumentVerification struct {
	LifecycleModel
	ApplicationID string  `gorm:"type:varchar(36);index"`
	DocumentURL   string  `gorm:"type:varchar(512)"`
	StatusID      string  `gorm:"type:varchar(36)"`
	Status        *Status `gorm:"foreignKey:StatusID"`
	DecidedBy     *string `gorm:"type:varchar(36)"`
	DecidedAt     *time.Time
	Note          string
}
