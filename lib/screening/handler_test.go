package screening

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
	recs    map[string]*dbmodels.JobApplication
	updates []map[string]interface{}
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	return rec.ID, nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	if _, ok := f.recs[id]; !ok {
		return errors.New("application not found")
	}
	f.updates = append(f.updates, updMap)
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

type fakeCandidateStore struct{}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) { return nil, nil }
func (f *fakeCandidateStore) UpsertSkill(candidateID, skillID string, years float64, updatedBy string) error {
	return nil
}
func (f *fakeCandidateStore) ListSkillIDs(candidateID string) ([]string, error) { return nil, nil }
func (f *fakeCandidateStore) ListQualifications(candidateID string) ([]dbmodels.CandidateQualification, error) {
	return nil, nil
}

type fakePositionStore struct{}

func (f *fakePositionStore) GetByID(id string) (*dbmodels.Position, error) { return nil, nil }

func (f *fakePositionStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakePositionStore) ListIDsByReviewer(reviewerID string) ([]string, error) {
	return nil, nil
}

func (f *fakePositionStore) GetRequiredSkillIDs(jobID string) ([]string, error) { return nil, nil }
func (f *fakePositionStore) GetRequiredQualifications(jobID string) ([]dbmodels.JobQualification, error) {
	return nil, nil
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

type fakeMachine struct {
	transitions []string
	notes       []string
}

func (f *fakeMachine) Transition(applicationID, toStatusID, actorID, note string) (applicationapimodels.ApplicationView, error) {
	f.transitions = append(f.transitions, toStatusID)
	f.notes = append(f.notes, note)
	return applicationapimodels.ApplicationView{ID: applicationID, StatusID: toStatusID}, nil
}

func (f *fakeMachine) BulkTransition(applicationIDs []string, toStatusID, actorID, comment string) (applicationapimodels.BulkResult, error) {
	return applicationapimodels.BulkResult{}, nil
}

func (f *fakeMachine) GetByID(applicationID string) (applicationapimodels.ApplicationView, error) {
	return applicationapimodels.ApplicationView{}, nil
}

func (f *fakeMachine) History(applicationID string, filter applicationapimodels.HistoryFilter) ([]applicationapimodels.HistoryView, int64, error) {
	return nil, 0, nil
}

func (f *fakeMachine) Comments(applicationID string, pagination apimodels.Pagination) ([]applicationapimodels.CommentView, error) {
	return nil, nil
}

func newTestPipeline(recs map[string]*dbmodels.JobApplication, statuses ...dbmodels.Status) (impl, *fakeApplicationStore, *fakeCommentStore, *fakeMachine) {
	store := &fakeApplicationStore{recs: recs}
	commentStore := &fakeCommentStore{}
	machine := &fakeMachine{}
	catalog := &fakeCatalog{statuses: map[string]dbmodels.Status{}}
	for _, rec := range statuses {
		catalog.statuses[rec.ID] = rec
	}
	pipeline := impl{
		store:          store,
		candidateStore: &fakeCandidateStore{},
		positionStore:  &fakePositionStore{},
		commentStore:   commentStore,
		catalog:        catalog,
		machine:        machine,
	}
	return pipeline, store, commentStore, machine
}

func testStatus(id string, code models.ApplicationStatus) dbmodels.Status {
	rec := dbmodels.Status{Entity: models.StatusEntityApplication, Code: string(code)}
	rec.ID = id
	return rec
}

func testApplication(id, statusID string) *dbmodels.JobApplication {
	rec := &dbmodels.JobApplication{StatusID: statusID}
	rec.ID = id
	return rec
}

func pipelineStatuses() []dbmodels.Status {
	return []dbmodels.Status{
		testStatus("id-applied", models.ApplicationStatusApplied),
		testStatus("id-screening", models.ApplicationStatusScreening),
		testStatus("id-shortlisted", models.ApplicationStatusShortlisted),
		testStatus("id-rejected", models.ApplicationStatusRejected),
	}
}

func TestScreenResume(t *testing.T) {
	t.Run(`approved moves to screening`, func(t *testing.T) {
		pipeline, _, commentStore, machine := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-applied")},
			pipelineStatuses()...,
		)
		view, err := pipeline.ScreenResume("app-1", "user-1", screeningapimodels.ScreenResumeRequest{
			Approved: true,
			Comments: "solid resume",
		})
		require.Nil(t, err)
		require.Equal(t, "id-screening", view.StatusID)
		require.Equal(t, []string{"id-screening"}, machine.transitions)

		// the remark lands in the comment feed, not in the history note
		require.Len(t, commentStore.rows, 1)
		require.Equal(t, "solid resume", commentStore.rows[0].Body)
		require.Equal(t, "user-1", commentStore.rows[0].AuthorID)
		require.Equal(t, []string{""}, machine.notes)
	})

	t.Run(`not approved terminates`, func(t *testing.T) {
		pipeline, _, _, machine := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-applied")},
			pipelineStatuses()...,
		)
		_, err := pipeline.ScreenResume("app-1", "user-1", screeningapimodels.ScreenResumeRequest{})
		require.Nil(t, err)
		require.Equal(t, []string{"id-rejected"}, machine.transitions)
	})

	t.Run(`score is persisted`, func(t *testing.T) {
		pipeline, store, _, _ := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-applied")},
			pipelineStatuses()...,
		)
		score := 72.5
		_, err := pipeline.ScreenResume("app-1", "user-1", screeningapimodels.ScreenResumeRequest{
			Approved: true,
			Score:    &score,
		})
		require.Nil(t, err)
		require.Len(t, store.updates, 1)
		require.Equal(t, 72.5, store.updates[0]["screening_score"])
	})

	t.Run(`terminal application is a conflict`, func(t *testing.T) {
		pipeline, _, _, machine := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-rejected")},
			pipelineStatuses()...,
		)
		_, err := pipeline.ScreenResume("app-1", "user-1", screeningapimodels.ScreenResumeRequest{Approved: true})
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		require.Equal(t, "application is already rejected", err.Error())
		require.Empty(t, machine.transitions)
	})

	t.Run(`missing application`, func(t *testing.T) {
		pipeline, _, _, _ := newTestPipeline(map[string]*dbmodels.JobApplication{}, pipelineStatuses()...)
		_, err := pipeline.ScreenResume("app-1", "user-1", screeningapimodels.ScreenResumeRequest{Approved: true})
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestShortlistCandidate(t *testing.T) {
	t.Run(`moves to shortlisted with a comment`, func(t *testing.T) {
		pipeline, _, commentStore, machine := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-screening")},
			pipelineStatuses()...,
		)
		view, err := pipeline.ShortlistCandidate("app-1", "user-1", screeningapimodels.ShortlistRequest{
			Comments: "strong fit for the team",
		})
		require.Nil(t, err)
		require.Equal(t, "id-shortlisted", view.StatusID)
		require.Equal(t, []string{"id-shortlisted"}, machine.transitions)
		require.Len(t, commentStore.rows, 1)
		require.Equal(t, "strong fit for the team", commentStore.rows[0].Body)
	})

	t.Run(`terminal application is a conflict`, func(t *testing.T) {
		pipeline, _, _, machine := newTestPipeline(
			map[string]*dbmodels.JobApplication{"app-1": testApplication("app-1", "id-rejected")},
			pipelineStatuses()...,
		)
		_, err := pipeline.ShortlistCandidate("app-1", "user-1", screeningapimodels.ShortlistRequest{})
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		require.Empty(t, machine.transitions)
	})
}
