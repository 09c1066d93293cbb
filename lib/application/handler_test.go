package application

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	applicationstore "ats-backend/lib/application/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
)

type fakeApplicationStore struct {
	recs map[string]*dbmodels.JobApplication
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	return rec.ID, nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("application not found")
	}
	if statusID, ok := updMap["status_id"].(string); ok {
		rec.StatusID = statusID
	}
	return nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return f.recs[id], nil
}

func (f *fakeApplicationStore) ListForScreening(statusIDs []string, filter screeningapimodels.ScreeningFilter) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListForScreeningCount(statusIDs []string, filter screeningapimodels.ScreeningFilter) (int64, error) {
	return 0, nil
}

func (f *fakeApplicationStore) CountByStatuses(statusIDs []string, positionIDs []string) (int64, error) {
	return 0, nil
}

func (f *fakeApplicationStore) StatsByStatus(from, to time.Time) ([]applicationstore.StatusStat, error) {
	return nil, nil
}

type fakeHistoryStore struct {
	rows []dbmodels.ApplicationStatusHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.ApplicationStatusHistory) (string, error) {
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeHistoryStore) List(applicationID string, filter applicationapimodels.HistoryFilter) ([]dbmodels.ApplicationStatusHistory, error) {
	return f.rows, nil
}

func (f *fakeHistoryStore) ListCount(applicationID string) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeCommentStore struct {
	rows []dbmodels.Comment
}

func (f *fakeCommentStore) Create(rec dbmodels.Comment) (string, error) {
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeCommentStore) List(applicationID string, pagination apimodels.Pagination) ([]dbmodels.Comment, error) {
	return f.rows, nil
}

type fakeCatalog struct {
	statuses map[string]dbmodels.Status
}

func (f *fakeCatalog) Resolve(entity models.StatusEntity, code string) (string, error) {
	for _, rec := range f.statuses {
		if rec.Entity == entity && rec.Code == code {
			return rec.ID, nil
		}
	}
	return "", apperrors.NotFound("unknown %s status: %s", entity, code)
}

func (f *fakeCatalog) IsValid(entity models.StatusEntity, statusID string) bool {
	rec, ok := f.statuses[statusID]
	return ok && rec.Entity == entity
}

func (f *fakeCatalog) GetByID(statusID string) (*dbmodels.Status, error) {
	rec, ok := f.statuses[statusID]
	if !ok {
		return nil, apperrors.NotFound("unknown status id: %s", statusID)
	}
	return &rec, nil
}

func (f *fakeCatalog) ListByEntity(entity models.StatusEntity) []dbmodels.Status {
	return nil
}

type fakeNotifier struct {
	stageChanges []string
}

func (f *fakeNotifier) StageChanged(applicationID, oldStatusID, newStatusID string) {
	f.stageChanges = append(f.stageChanges, applicationID)
}

func (f *fakeNotifier) InterviewScheduled(interviewID string) {}

func (f *fakeNotifier) OfferGenerated(offerLetterID string) {}
func (f *fakeNotifier) VerificationDecided(verificationID string) {}

func newTestMachine(recs map[string]*dbmodels.JobApplication, statuses ...dbmodels.Status) (impl, *fakeApplicationStore, *fakeHistoryStore, *fakeCommentStore, *fakeNotifier) {
	store := &fakeApplicationStore{recs: recs}
	historyStore := &fakeHistoryStore{}
	commentStore := &fakeCommentStore{}
	notifier := &fakeNotifier{}
	catalog := &fakeCatalog{statuses: map[string]dbmodels.Status{}}
	for _, rec := range statuses {
		catalog.statuses[rec.ID] = rec
	}
	machine := impl{
		store:        store,
		historyStore: historyStore,
		commentStore: commentStore,
		catalog:      catalog,
		notifier:     notifier,
		tx: func(fn func(s txStores) error) error {
			return fn(txStores{
				application: store,
				history:     historyStore,
				comment:     commentStore,
			})
		},
	}
	return machine, store, historyStore, commentStore, notifier
}

func testStatus(id string, code models.ApplicationStatus) dbmodels.Status {
	rec := dbmodels.Status{Entity: models.StatusEntityApplication, Code: string(code)}
	rec.ID = id
	return rec
}

func TestCheckTransitionTarget(t *testing.T) {
	t.Run(`missing application`, func(t *testing.T) {
		err := CheckTransitionTarget(nil)
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
		require.Equal(t, "application not found", err.Error())
	})

	t.Run(`deleted application`, func(t *testing.T) {
		rec := dbmodels.JobApplication{}
		rec.State = models.RecordStateDeleted
		err := CheckTransitionTarget(&rec)
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		require.Equal(t, "application deleted", err.Error())
	})

	t.Run(`active application`, func(t *testing.T) {
		rec := dbmodels.JobApplication{}
		rec.State = models.RecordStateActive
		require.Nil(t, CheckTransitionTarget(&rec))
	})
}

func TestTransition(t *testing.T) {
	rec := &dbmodels.JobApplication{StatusID: "id-applied"}
	rec.ID = "app-1"
	machine, _, historyStore, _, notifier := newTestMachine(
		map[string]*dbmodels.JobApplication{"app-1": rec},
		testStatus("id-applied", models.ApplicationStatusApplied),
		testStatus("id-screening", models.ApplicationStatusScreening),
	)

	view, err := machine.Transition("app-1", "id-screening", "user-1", "resume looks fine")
	require.Nil(t, err)
	require.Equal(t, "id-screening", view.StatusID)

	require.Len(t, historyStore.rows, 1)
	require.Equal(t, "id-applied", *historyStore.rows[0].FromStatusID)
	require.Equal(t, "id-screening", historyStore.rows[0].ToStatusID)
	require.Equal(t, "resume looks fine", historyStore.rows[0].Note)
	require.Equal(t, []string{"app-1"}, notifier.stageChanges)
}

func TestTransitionUnknownStatus(t *testing.T) {
	machine, _, _, _, _ := newTestMachine(
		map[string]*dbmodels.JobApplication{},
		testStatus("id-applied", models.ApplicationStatusApplied),
	)
	_, err := machine.Transition("app-1", "id-missing", "user-1", "")
	require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestBulkTransitionPartialFailure(t *testing.T) {
	first := &dbmodels.JobApplication{StatusID: "id-applied"}
	first.ID = "app-1"
	deleted := &dbmodels.JobApplication{StatusID: "id-applied"}
	deleted.ID = "app-2"
	deleted.State = models.RecordStateDeleted
	third := &dbmodels.JobApplication{StatusID: "id-applied"}
	third.ID = "app-3"

	machine, store, historyStore, commentStore, notifier := newTestMachine(
		map[string]*dbmodels.JobApplication{
			"app-1": first,
			"app-2": deleted,
			"app-3": third,
		},
		testStatus("id-applied", models.ApplicationStatusApplied),
		testStatus("id-screening", models.ApplicationStatusScreening),
	)

	result, err := machine.BulkTransition([]string{"app-1", "app-2", "app-4", "app-3"}, "id-screening", "user-1", "moving forward")
	require.Nil(t, err)

	require.Equal(t, []string{"app-1", "app-3"}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	require.Equal(t, "app-2", result.Failed[0].ApplicationID)
	require.Equal(t, "application deleted", result.Failed[0].Reason)
	require.Equal(t, "app-4", result.Failed[1].ApplicationID)
	require.Equal(t, "application not found", result.Failed[1].Reason)

	// the survivors moved, the deleted row did not
	require.Equal(t, "id-screening", store.recs["app-1"].StatusID)
	require.Equal(t, "id-screening", store.recs["app-3"].StatusID)
	require.Equal(t, "id-applied", store.recs["app-2"].StatusID)

	require.Len(t, historyStore.rows, 2)
	require.Len(t, commentStore.rows, 2)
	require.Equal(t, "moving forward", commentStore.rows[0].Body)
	require.Equal(t, []string{"app-1", "app-3"}, notifier.stageChanges)
}

func TestBulkTransitionUnknownStatus(t *testing.T) {
	machine, _, _, _, _ := newTestMachine(
		map[string]*dbmodels.JobApplication{},
		testStatus("id-applied", models.ApplicationStatusApplied),
	)
	_, err := machine.BulkTransition([]string{"app-1"}, "id-missing", "user-1", "")
	require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}
