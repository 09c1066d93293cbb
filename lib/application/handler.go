package application

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ats-backend/db"
	applicationhistorystore "ats-backend/lib/application-history/store"
	applicationstore "ats-backend/lib/application/store"
	commentstore "ats-backend/lib/comment/store"
	statuscatalog "ats-backend/lib/dicts/status"
	notificationhandler "ats-backend/lib/notification"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"
)

// Provider is the application status machine. Transitions are
// permissive (any catalog-valid status may follow any other), but every
// change updates the current status and appends a history row in one
// transaction.
type Provider interface {
	Transition(applicationID, toStatusID, actorID, note string) (applicationapimodels.ApplicationView, error)
	BulkTransition(applicationIDs []string, toStatusID, actorID, comment string) (applicationapimodels.BulkResult, error)
	GetByID(applicationID string) (applicationapimodels.ApplicationView, error)
	History(applicationID string, filter applicationapimodels.HistoryFilter) ([]applicationapimodels.HistoryView, int64, error)
	Comments(applicationID string, pagination apimodels.Pagination) ([]applicationapimodels.CommentView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		historyStore: applicationhistorystore.NewInstance(db.DB),
		commentStore: commentstore.NewInstance(db.DB),
		catalog:      statuscatalog.Instance,
		notifier:     notificationhandler.Instance,
		tx:           dbTxRunner,
	}
}

type impl struct {
	store        applicationstore.Provider
	historyStore applicationhistorystore.Provider
	commentStore commentstore.Provider
	catalog      statuscatalog.Provider
	notifier     notificationhandler.Provider
	tx           txRunner
}

// txStores are the stores bound to one transaction.
type txStores struct {
	application applicationstore.Provider
	history     applicationhistorystore.Provider
	comment     commentstore.Provider
}

type txRunner func(fn func(s txStores) error) error

func dbTxRunner(fn func(s txStores) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(txStores{
			application: applicationstore.NewInstance(tx),
			history:     applicationhistorystore.NewInstance(tx),
			comment:     commentstore.NewInstance(tx),
		})
	})
}

// CheckTransitionTarget validates the application row itself; the
// status id is checked against the catalog separately.
func CheckTransitionTarget(rec *dbmodels.JobApplication) error {
	if rec == nil {
		return apperrors.NotFound("application not found")
	}
	if rec.IsDeleted() {
		return apperrors.Conflict("application deleted")
	}
	return nil
}

func (i impl) Transition(applicationID, toStatusID, actorID, note string) (applicationapimodels.ApplicationView, error) {
	if !i.catalog.IsValid(models.StatusEntityApplication, toStatusID) {
		return applicationapimodels.ApplicationView{}, apperrors.InvalidArgument("unknown application status id: %s", toStatusID)
	}
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = CheckTransitionTarget(rec); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	oldStatusID := rec.StatusID
	err = i.tx(func(s txStores) error {
		return applyTransition(s, *rec, toStatusID, actorID, note)
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	i.getLogger(applicationID, actorID).
		WithField("from_status_id", oldStatusID).
		WithField("to_status_id", toStatusID).
		Info("application status changed")
	// stage-change event is dispatched after commit, a collaborator
	// failure never rolls back the workflow state
	i.notifier.StageChanged(applicationID, oldStatusID, toStatusID)

	updated, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return applicationapimodels.ApplicationConvert(*updated), nil
}

func (i impl) BulkTransition(applicationIDs []string, toStatusID, actorID, comment string) (applicationapimodels.BulkResult, error) {
	result := applicationapimodels.BulkResult{
		Succeeded: []string{},
		Failed:    []applicationapimodels.BulkFailure{},
	}
	if !i.catalog.IsValid(models.StatusEntityApplication, toStatusID) {
		return result, apperrors.InvalidArgument("unknown application status id: %s", toStatusID)
	}
	logger := i.getLogger("", actorID).
		WithField("to_status_id", toStatusID)
	for _, applicationID := range applicationIDs {
		oldStatusID, err := i.transitionOne(applicationID, toStatusID, actorID, comment)
		if err != nil {
			result.Failed = append(result.Failed, applicationapimodels.BulkFailure{
				ApplicationID: applicationID,
				Reason:        err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, applicationID)
		i.notifier.StageChanged(applicationID, oldStatusID, toStatusID)
	}
	logger.
		WithField("succeeded", len(result.Succeeded)).
		WithField("failed", len(result.Failed)).
		Info("bulk status change processed")
	return result, nil
}

// transitionOne runs a single bulk item in its own transaction so one
// failing id cannot roll back the others.
func (i impl) transitionOne(applicationID, toStatusID, actorID, comment string) (oldStatusID string, err error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return "", err
	}
	if err = CheckTransitionTarget(rec); err != nil {
		return "", err
	}
	oldStatusID = rec.StatusID
	err = i.tx(func(s txStores) error {
		if err := applyTransition(s, *rec, toStatusID, actorID, ""); err != nil {
			return err
		}
		if comment == "" {
			return nil
		}
		commentRec := dbmodels.Comment{
			ApplicationID: applicationID,
			AuthorID:      actorID,
			Body:          comment,
		}
		_, err := s.comment.Create(commentRec)
		return err
	})
	if err != nil {
		return "", err
	}
	return oldStatusID, nil
}

// applyTransition updates the current status and appends the history
// row inside the caller's transaction; partial application of the two
// writes is a correctness bug.
func applyTransition(s txStores, rec dbmodels.JobApplication, toStatusID, actorID, note string) error {
	updMap := map[string]interface{}{
		"status_id":  toStatusID,
		"updated_by": actorID,
	}
	if err := s.application.Update(rec.ID, updMap); err != nil {
		return err
	}
	fromStatusID := rec.StatusID
	historyRec := dbmodels.ApplicationStatusHistory{
		ApplicationID: rec.ID,
		FromStatusID:  &fromStatusID,
		ToStatusID:    toStatusID,
		ActorID:       actorID,
		Note:          note,
		ChangedAt:     time.Now(),
	}
	_, err := s.history.Create(historyRec)
	return err
}

func (i impl) GetByID(applicationID string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NotFound("application not found")
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) History(applicationID string, filter applicationapimodels.HistoryFilter) ([]applicationapimodels.HistoryView, int64, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, apperrors.NotFound("application not found")
	}
	rowCount, err := i.historyStore.ListCount(applicationID)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.historyStore.List(applicationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.HistoryView, 0, len(list))
	for _, item := range list {
		result = append(result, applicationapimodels.HistoryConvert(item))
	}
	return result, rowCount, nil
}

func (i impl) Comments(applicationID string, pagination apimodels.Pagination) ([]applicationapimodels.CommentView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("application not found")
	}
	list, err := i.commentStore.List(applicationID, pagination)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.CommentView, 0, len(list))
	for _, item := range list {
		result = append(result, applicationapimodels.CommentConvert(item))
	}
	return result, nil
}

func (i impl) getLogger(applicationID, actorID string) *log.Entry {
	logger := log.WithField("actor_id", actorID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}
