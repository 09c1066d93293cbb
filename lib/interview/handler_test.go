package interview

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	applicationstore "ats-backend/lib/application/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	interviewapimodels "ats-backend/models/api/interview"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
)

type fakeInterviewStore struct {
	recs     map[string]*dbmodels.Interview
	maxRound int
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (string, error) {
	id := fmt.Sprintf("int-%d", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeInterviewStore) CreateInterviewers(interviewID string, employeeIDs []string) error {
	rec, ok := f.recs[interviewID]
	if !ok {
		return errors.New("interview not found")
	}
	for _, employeeID := range employeeIDs {
		rec.Interviewers = append(rec.Interviewers, dbmodels.Interviewer{
			InterviewID: interviewID,
			EmployeeID:  employeeID,
		})
	}
	return nil
}

func (f *fakeInterviewStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("interview not found")
	}
	if statusID, ok := updMap["status_id"].(string); ok {
		rec.StatusID = statusID
	}
	return nil
}

func (f *fakeInterviewStore) GetByID(id string) (*dbmodels.Interview, error) {
	return f.recs[id], nil
}

func (f *fakeInterviewStore) CountRounds(applicationID string) (int64, error) {
	return int64(len(f.recs)), nil
}

func (f *fakeInterviewStore) MaxRound(applicationID string) (int, error) {
	return f.maxRound, nil
}

type fakeScheduleStore struct {
	rows    []dbmodels.InterviewSchedule
	updates map[string]string
}

func (f *fakeScheduleStore) Create(rec dbmodels.InterviewSchedule) (string, error) {
	rec.ID = fmt.Sprintf("sch-%d", len(f.rows)+1)
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeScheduleStore) Update(id string, updMap map[string]interface{}) error {
	if statusID, ok := updMap["status_id"].(string); ok {
		f.updates[id] = statusID
	}
	return nil
}

func (f *fakeScheduleStore) List(interviewID string) ([]dbmodels.InterviewSchedule, error) {
	return f.rows, nil
}

type fakeFeedbackStore struct {
	rows []dbmodels.InterviewFeedback
}

func (f *fakeFeedbackStore) Upsert(rec dbmodels.InterviewFeedback) (string, error) {
	f.rows = append(f.rows, rec)
	return fmt.Sprintf("fb-%d", len(f.rows)), nil
}

func (f *fakeFeedbackStore) List(interviewID string) ([]dbmodels.InterviewFeedback, error) {
	return f.rows, nil
}

type fakeInterviewHistoryStore struct {
	rows []dbmodels.InterviewStatusHistory
}

func (f *fakeInterviewHistoryStore) Create(rec dbmodels.InterviewStatusHistory) (string, error) {
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeInterviewHistoryStore) List(interviewID string) ([]dbmodels.InterviewStatusHistory, error) {
	return f.rows, nil
}

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

type fakePositionStore struct {
	recs map[string]*dbmodels.Position
}

func (f *fakePositionStore) GetByID(id string) (*dbmodels.Position, error) {
	return f.recs[id], nil
}

func (f *fakePositionStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakePositionStore) ListIDsByReviewer(reviewerID string) ([]string, error) {
	return nil, nil
}
func (f *fakePositionStore) GetRequiredSkillIDs(jobID string) ([]string, error) { return nil, nil }
func (f *fakePositionStore) GetRequiredQualifications(jobID string) ([]dbmodels.JobQualification, error) {
	return nil, nil
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
	scheduled []string
}

func (f *fakeNotifier) StageChanged(applicationID, oldStatusID, newStatusID string) {}

func (f *fakeNotifier) InterviewScheduled(interviewID string) {
	f.scheduled = append(f.scheduled, interviewID)
}

func (f *fakeNotifier) OfferGenerated(offerLetterID string) {}

func (f *fakeNotifier) VerificationDecided(verificationID string) {}

type testFixture struct {
	handler       impl
	store         *fakeInterviewStore
	scheduleStore *fakeScheduleStore
	historyStore  *fakeInterviewHistoryStore
	appStore      *fakeApplicationStore
	notifier      *fakeNotifier
}

func newTestHandler(maxRound, numberOfInterviews int) testFixture {
	applicationRec := &dbmodels.JobApplication{PositionID: "pos-1", StatusID: "id-app-interview"}
	applicationRec.ID = "app-1"
	positionRec := &dbmodels.Position{NumberOfInterviews: numberOfInterviews}
	positionRec.ID = "pos-1"

	store := &fakeInterviewStore{recs: map[string]*dbmodels.Interview{}, maxRound: maxRound}
	scheduleStore := &fakeScheduleStore{updates: map[string]string{}}
	historyStore := &fakeInterviewHistoryStore{}
	appStore := &fakeApplicationStore{recs: map[string]*dbmodels.JobApplication{"app-1": applicationRec}}
	notifier := &fakeNotifier{}

	statuses := map[string]dbmodels.Status{}
	addStatus := func(id string, entity models.StatusEntity, code string) {
		rec := dbmodels.Status{Entity: entity, Code: code}
		rec.ID = id
		statuses[id] = rec
	}
	addStatus("id-planned", models.StatusEntityInterview, string(models.InterviewStatusPlanned))
	addStatus("id-completed", models.StatusEntityInterview, string(models.InterviewStatusCompleted))
	addStatus("id-scheduled", models.StatusEntitySchedule, string(models.ScheduleStatusScheduled))
	addStatus("id-rescheduled", models.StatusEntitySchedule, string(models.ScheduleStatusRescheduled))
	addStatus("id-cancelled", models.StatusEntitySchedule, string(models.ScheduleStatusCancelled))

	handler := impl{
		store:         store,
		scheduleStore: scheduleStore,
		feedbackStore: &fakeFeedbackStore{},
		historyStore:  historyStore,
		applicationSt: appStore,
		positionStore: &fakePositionStore{recs: map[string]*dbmodels.Position{"pos-1": positionRec}},
		catalog:       &fakeCatalog{statuses: statuses},
		notifier:      notifier,
	}
	handler.tx = func(fn func(s txStores) error) error {
		return fn(txStores{
			interview:   store,
			schedule:    scheduleStore,
			history:     historyStore,
			application: appStore,
		})
	}
	return testFixture{
		handler:       handler,
		store:         store,
		scheduleStore: scheduleStore,
		historyStore:  historyStore,
		appStore:      appStore,
		notifier:      notifier,
	}
}

func TestCreateFirstRound(t *testing.T) {
	fixture := newTestHandler(0, 3)
	view, err := fixture.handler.Create("user-1", interviewapimodels.InterviewCreateRequest{
		ApplicationID:  "app-1",
		RoundNumber:    1,
		InterviewerIDs: []string{"e1", "e2"},
	})
	require.Nil(t, err)
	require.Equal(t, 1, view.RoundNumber)
	require.Equal(t, []string{"e1", "e2"}, view.Interviewers)

	require.Len(t, fixture.historyStore.rows, 1)
	require.Equal(t, "id-planned", fixture.historyStore.rows[0].ToStatusID)

	// the round counter on the application moves with the round row
	require.Len(t, fixture.appStore.updates, 1)
	require.Equal(t, 1, fixture.appStore.updates[0]["interview_rounds"])
}

func TestCreateNextRound(t *testing.T) {
	fixture := newTestHandler(1, 3)
	view, err := fixture.handler.Create("user-1", interviewapimodels.InterviewCreateRequest{
		ApplicationID:  "app-1",
		RoundNumber:    2,
		InterviewerIDs: []string{"e1"},
	})
	require.Nil(t, err)
	require.Equal(t, 2, view.RoundNumber)
}

func TestCreateRoundLimit(t *testing.T) {
	fixture := newTestHandler(3, 3)
	_, err := fixture.handler.Create("user-1", interviewapimodels.InterviewCreateRequest{
		ApplicationID:  "app-1",
		RoundNumber:    4,
		InterviewerIDs: []string{"e1"},
	})
	require.NotNil(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	require.Empty(t, fixture.store.recs)
}

func TestCreateNonSequentialRound(t *testing.T) {
	fixture := newTestHandler(1, 0)
	_, err := fixture.handler.Create("user-1", interviewapimodels.InterviewCreateRequest{
		ApplicationID:  "app-1",
		RoundNumber:    3,
		InterviewerIDs: []string{"e1"},
	})
	require.NotNil(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestScheduleReschedulesCurrentSlot(t *testing.T) {
	fixture := newTestHandler(1, 3)
	current := dbmodels.InterviewSchedule{InterviewID: "int-1", StatusID: "id-scheduled"}
	current.ID = "sch-existing"
	rec := &dbmodels.Interview{
		ApplicationID: "app-1",
		RoundNumber:   1,
		StatusID:      "id-planned",
		Schedules:     []dbmodels.InterviewSchedule{current},
	}
	rec.ID = "int-1"
	fixture.store.recs["int-1"] = rec

	_, err := fixture.handler.Schedule("int-1", "user-1", interviewapimodels.ScheduleRequest{
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Location:    "room 4",
	})
	require.Nil(t, err)

	// previous slot closed as rescheduled, a fresh scheduled row created
	require.Equal(t, "id-rescheduled", fixture.scheduleStore.updates["sch-existing"])
	require.Len(t, fixture.scheduleStore.rows, 1)
	require.Equal(t, "id-scheduled", fixture.scheduleStore.rows[0].StatusID)
	require.Equal(t, []string{"int-1"}, fixture.notifier.scheduled)
}

func TestScheduleCompletedInterview(t *testing.T) {
	fixture := newTestHandler(1, 3)
	rec := &dbmodels.Interview{ApplicationID: "app-1", StatusID: "id-completed"}
	rec.ID = "int-1"
	fixture.store.recs["int-1"] = rec

	_, err := fixture.handler.Schedule("int-1", "user-1", interviewapimodels.ScheduleRequest{
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NotNil(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	require.Empty(t, fixture.scheduleStore.rows)
}
