package statuscatalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func newTestCatalog(list []dbmodels.Status) *impl {
	instance := &impl{
		byID:   make(map[string]dbmodels.Status, len(list)),
		byCode: make(map[string]dbmodels.Status, len(list)),
	}
	for _, rec := range list {
		instance.byID[rec.ID] = rec
		instance.byCode[cacheKey(rec.Entity, rec.Code)] = rec
	}
	return instance
}

func TestCatalog(t *testing.T) {
	applied := dbmodels.Status{Entity: models.StatusEntityApplication, Code: "applied", Name: "Applied"}
	applied.ID = "id-applied"
	planned := dbmodels.Status{Entity: models.StatusEntityInterview, Code: "planned", Name: "Planned"}
	planned.ID = "id-planned"
	catalog := newTestCatalog([]dbmodels.Status{applied, planned})

	t.Run(`resolve`, func(t *testing.T) {
		id, err := catalog.Resolve(models.StatusEntityApplication, "applied")
		require.Nil(t, err)
		require.Equal(t, "id-applied", id)
	})

	t.Run(`resolve unknown code`, func(t *testing.T) {
		_, err := catalog.Resolve(models.StatusEntityApplication, "archived")
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run(`codes are scoped per entity`, func(t *testing.T) {
		_, err := catalog.Resolve(models.StatusEntityInterview, "applied")
		require.NotNil(t, err)
	})

	t.Run(`is valid checks the entity`, func(t *testing.T) {
		require.True(t, catalog.IsValid(models.StatusEntityApplication, "id-applied"))
		require.False(t, catalog.IsValid(models.StatusEntityInterview, "id-applied"))
		require.False(t, catalog.IsValid(models.StatusEntityApplication, "unknown"))
	})

	t.Run(`get by id`, func(t *testing.T) {
		rec, err := catalog.GetByID("id-planned")
		require.Nil(t, err)
		require.Equal(t, "planned", rec.Code)

		_, err = catalog.GetByID("unknown")
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run(`list by entity`, func(t *testing.T) {
		list := catalog.ListByEntity(models.StatusEntityInterview)
		require.Len(t, list, 1)
		require.Equal(t, "planned", list[0].Code)
	})
}
