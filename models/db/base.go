package dbmodels

import (
	"time"

	"ats-backend/models"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LifecycleModel is the base for soft-deletable rows.
// A row in the deleted state is excluded from every active-pipeline
// query; owned audit rows are never removed with it.
type LifecycleModel struct {
	BaseModel
	State models.RecordState `gorm:"type:varchar(20);default:'active';index" json:"state"`
}

func (m LifecycleModel) IsDeleted() bool {
	return m.State == models.RecordStateDeleted
}
