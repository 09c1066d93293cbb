package dbmodels

import "ats-backend/models"

// Status is one row of the seeded status catalog. Read-only after seeding.
type Status struct {
	BaseModel
	Entity models.StatusEntity `gorm:"type:varchar(50);uniqueIndex:idx_status_entity_code"`
	Code   string              `gorm:"type:varchar(50);uniqueIndex:idx_status_entity_code"`
	Name   string              `gorm:"type:varchar(255)"`
}
