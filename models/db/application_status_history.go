package dbmodels

import "time"

// ApplicationStatusHistory is an append-only audit row, one per status
// transition. Never mutated or deleted; the latest row's ToStatusID must
// equal the owning application's current StatusID.
type ApplicationStatusHistory struct {
	BaseModel
	ApplicationID string  `gorm:"type:varchar(36);index"`
	FromStatusID  *string `gorm:"type:varchar(36)"`
	ToStatusID    string  `gorm:"type:varchar(36)"`
	ToStatus      *Status `gorm:"foreignKey:ToStatusID"`
	ActorID       string  `gorm:"type:varchar(36)"`
	Note          string
	ChangedAt     time.Time `gorm:"index"`
}

type Comment struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	AuthorID      string `gorm:"type:varchar(36)"`
	Body          string
}
