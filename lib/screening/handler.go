package screening

import (
	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	"ats-backend/lib/application"
	applicationstore "ats-backend/lib/application/store"
	candidatestore "ats-backend/lib/candidate/store"
	commentstore "ats-backend/lib/comment/store"
	statuscatalog "ats-backend/lib/dicts/status"
	positionstore "ats-backend/lib/position/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	applicationapimodels "ats-backend/models/api/application"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
)

// Provider is the resume screening stage: review decisions, the
// shortlist, reviewer assignment and the screening queues.
type Provider interface {
	ScreenResume(applicationID, actorID string, req screeningapimodels.ScreenResumeRequest) (applicationapimodels.ApplicationView, error)
	ShortlistCandidate(applicationID, actorID string, req screeningapimodels.ShortlistRequest) (applicationapimodels.ApplicationView, error)
	AssignReviewer(positionID, actorID string, req screeningapimodels.AssignReviewerRequest) error
	UpdateCandidateSkills(candidateID, actorID string, req screeningapimodels.SkillsUpdateRequest) error
	ListForScreening(filter screeningapimodels.ScreeningFilter) ([]applicationapimodels.ApplicationView, int64, error)
	ListShortlisted(filter screeningapimodels.ScreeningFilter) ([]applicationapimodels.ApplicationView, int64, error)
	Stats(filter screeningapimodels.StatsFilter) (screeningapimodels.ScreeningStats, error)
	PendingCount(reviewerID string) (count int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		positionStore:  positionstore.NewInstance(db.DB),
		commentStore:   commentstore.NewInstance(db.DB),
		catalog:        statuscatalog.Instance,
		machine:        application.Instance,
	}
}

type impl struct {
	store          applicationstore.Provider
	candidateStore candidatestore.Provider
	positionStore  positionstore.Provider
	commentStore   commentstore.Provider
	catalog        statuscatalog.Provider
	machine        application.Provider
}

// ScreenResume records the review outcome and routes the application
// forward: approved resumes move to screening, rejected ones terminate.
func (i impl) ScreenResume(applicationID, actorID string, req screeningapimodels.ScreenResumeRequest) (applicationapimodels.ApplicationView, error) {
	if err := req.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = i.checkOpen(rec); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	targetCode := models.ApplicationStatusScreening
	if !req.Approved {
		targetCode = models.ApplicationStatusRejected
	}
	targetStatusID, err := i.catalog.Resolve(models.StatusEntityApplication, string(targetCode))
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}

	if req.Score != nil {
		err = i.store.Update(applicationID, map[string]interface{}{
			"screening_score": *req.Score,
			"updated_by":      actorID,
		})
		if err != nil {
			return applicationapimodels.ApplicationView{}, err
		}
	}
	view, err := i.machine.Transition(applicationID, targetStatusID, actorID, "")
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = i.saveComment(applicationID, actorID, req.Comments); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	i.getLogger(applicationID, actorID).
		WithField("approved", req.Approved).
		Info("resume screened")
	return view, nil
}

func (i impl) ShortlistCandidate(applicationID, actorID string, req screeningapimodels.ShortlistRequest) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = i.checkOpen(rec); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	targetStatusID, err := i.catalog.Resolve(models.StatusEntityApplication, string(models.ApplicationStatusShortlisted))
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	view, err := i.machine.Transition(applicationID, targetStatusID, actorID, "")
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = i.saveComment(applicationID, actorID, req.Comments); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	i.getLogger(applicationID, actorID).Info("candidate shortlisted")
	return view, nil
}

// checkOpen rejects screening actions on a missing, deleted or
// terminal application; a terminal outcome is reported, never silently
// re-opened.
func (i impl) checkOpen(rec *dbmodels.JobApplication) error {
	if err := application.CheckTransitionTarget(rec); err != nil {
		return err
	}
	statusRec, err := i.catalog.GetByID(rec.StatusID)
	if err != nil {
		return err
	}
	if models.ApplicationStatus(statusRec.Code).IsTerminal() {
		return apperrors.Conflict("application is already %s", statusRec.Code)
	}
	return nil
}

// saveComment stores the screening remark as an application comment so
// it shows up in the comment feed, not only in the status history.
func (i impl) saveComment(applicationID, actorID, body string) error {
	if body == "" {
		return nil
	}
	_, err := i.commentStore.Create(dbmodels.Comment{
		ApplicationID: applicationID,
		AuthorID:      actorID,
		Body:          body,
	})
	return err
}

func (i impl) AssignReviewer(positionID, actorID string, req screeningapimodels.AssignReviewerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.positionStore.GetByID(positionID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("position not found")
	}
	err = i.positionStore.Update(positionID, map[string]interface{}{
		"reviewer_id": req.ReviewerID,
	})
	if err != nil {
		return err
	}
	log.
		WithField("position_id", positionID).
		WithField("reviewer_id", req.ReviewerID).
		WithField("actor_id", actorID).
		Info("reviewer assigned")
	return nil
}

func (i impl) UpdateCandidateSkills(candidateID, actorID string, req screeningapimodels.SkillsUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("candidate not found")
	}
	for _, skill := range req.Skills {
		if err = i.candidateStore.UpsertSkill(candidateID, skill.SkillID, skill.Years, actorID); err != nil {
			return err
		}
	}
	log.
		WithField("candidate_id", candidateID).
		WithField("actor_id", actorID).
		WithField("skills", len(req.Skills)).
		Info("candidate skills updated")
	return nil
}

func (i impl) ListForScreening(filter screeningapimodels.ScreeningFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	statusIDs, err := i.resolveStatuses(models.ApplicationStatusApplied, models.ApplicationStatusScreening)
	if err != nil {
		return nil, 0, err
	}
	return i.listByStatuses(statusIDs, filter)
}

func (i impl) ListShortlisted(filter screeningapimodels.ScreeningFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	statusIDs, err := i.resolveStatuses(models.ApplicationStatusShortlisted)
	if err != nil {
		return nil, 0, err
	}
	return i.listByStatuses(statusIDs, filter)
}

func (i impl) Stats(filter screeningapimodels.StatsFilter) (screeningapimodels.ScreeningStats, error) {
	result := screeningapimodels.ScreeningStats{
		From:   filter.From,
		To:     filter.To,
		Counts: []screeningapimodels.StatusCount{},
	}
	list, err := i.store.StatsByStatus(filter.From, filter.To)
	if err != nil {
		return result, err
	}
	for _, item := range list {
		statusRec, err := i.catalog.GetByID(item.StatusID)
		if err != nil {
			return result, err
		}
		result.Counts = append(result.Counts, screeningapimodels.StatusCount{
			StatusCode: statusRec.Code,
			Total:      item.Total,
		})
	}
	return result, nil
}

// PendingCount is the screening backlog of one reviewer across every
// position assigned to them.
func (i impl) PendingCount(reviewerID string) (int64, error) {
	positionIDs, err := i.positionStore.ListIDsByReviewer(reviewerID)
	if err != nil {
		return 0, err
	}
	if len(positionIDs) == 0 {
		return 0, nil
	}
	statusIDs, err := i.resolveStatuses(models.ApplicationStatusApplied, models.ApplicationStatusScreening)
	if err != nil {
		return 0, err
	}
	return i.store.CountByStatuses(statusIDs, positionIDs)
}

func (i impl) listByStatuses(statusIDs []string, filter screeningapimodels.ScreeningFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	rowCount, err := i.store.ListForScreeningCount(statusIDs, filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.ListForScreening(statusIDs, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, item := range list {
		result = append(result, applicationapimodels.ApplicationConvert(item))
	}
	return result, rowCount, nil
}

func (i impl) resolveStatuses(codes ...models.ApplicationStatus) ([]string, error) {
	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		id, err := i.catalog.Resolve(models.StatusEntityApplication, string(code))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (i impl) getLogger(applicationID, actorID string) *log.Entry {
	return log.
		WithField("application_id", applicationID).
		WithField("actor_id", actorID)
}
