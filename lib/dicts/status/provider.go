package statuscatalog

import (
	"fmt"

	"ats-backend/db"
	statusstore "ats-backend/lib/dicts/status/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

// Provider is the read-only status vocabulary. Rows are seeded at
// migration and cached in memory on startup; no transition logic lives here.
type Provider interface {
	Resolve(entity models.StatusEntity, code string) (statusID string, err error)
	IsValid(entity models.StatusEntity, statusID string) bool
	GetByID(statusID string) (rec *dbmodels.Status, err error)
	ListByEntity(entity models.StatusEntity) []dbmodels.Status
}

var Instance Provider

func NewHandler() error {
	store := statusstore.NewInstance(db.DB)
	list, err := store.List()
	if err != nil {
		return err
	}
	instance := &impl{
		byID:   make(map[string]dbmodels.Status, len(list)),
		byCode: make(map[string]dbmodels.Status, len(list)),
	}
	for _, rec := range list {
		instance.byID[rec.ID] = rec
		instance.byCode[cacheKey(rec.Entity, rec.Code)] = rec
	}
	Instance = instance
	return nil
}

type impl struct {
	byID   map[string]dbmodels.Status
	byCode map[string]dbmodels.Status
}

func cacheKey(entity models.StatusEntity, code string) string {
	return fmt.Sprintf("%s/%s", entity, code)
}

func (i impl) Resolve(entity models.StatusEntity, code string) (string, error) {
	rec, ok := i.byCode[cacheKey(entity, code)]
	if !ok {
		return "", apperrors.NotFound("unknown %s status: %s", entity, code)
	}
	return rec.ID, nil
}

func (i impl) IsValid(entity models.StatusEntity, statusID string) bool {
	rec, ok := i.byID[statusID]
	return ok && rec.Entity == entity
}

func (i impl) GetByID(statusID string) (*dbmodels.Status, error) {
	rec, ok := i.byID[statusID]
	if !ok {
		return nil, apperrors.NotFound("unknown status id: %s", statusID)
	}
	return &rec, nil
}

func (i impl) ListByEntity(entity models.StatusEntity) []dbmodels.Status {
	result := make([]dbmodels.Status, 0, len(i.byID))
	for _, rec := range i.byID {
		if rec.Entity == entity {
			result = append(result, rec)
		}
	}
	return result
}
