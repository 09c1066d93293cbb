package offer

import (
	"time"

	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	"ats-backend/lib/application"
	applicationstore "ats-backend/lib/application/store"
	statuscatalog "ats-backend/lib/dicts/status"
	notificationhandler "ats-backend/lib/notification"
	offerstore "ats-backend/lib/offer/store"
	"ats-backend/lib/utils/apperrors"
	"ats-backend/models"
	offerapimodels "ats-backend/models/api/offer"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
)

// Provider handles the post-selection paperwork: the offer letter
// record and the document verification queue. Document rendering and
// storage live behind the URL, the core only tracks outcomes.
type Provider interface {
	GenerateOffer(applicationID, actorID string, req screeningapimodels.OfferRequest) (offerapimodels.OfferView, error)
	GetOffer(applicationID string) (offerapimodels.OfferView, error)
	SubmitVerification(applicationID, actorID string, req screeningapimodels.OfferRequest) (offerapimodels.VerificationView, error)
	DecideVerification(verificationID, actorID string, req screeningapimodels.VerificationDecisionRequest) (offerapimodels.VerificationView, error)
	ListVerifications(applicationID string) ([]offerapimodels.VerificationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         offerstore.NewInstance(db.DB),
		applicationSt: applicationstore.NewInstance(db.DB),
		catalog:       statuscatalog.Instance,
		notifier:      notificationhandler.Instance,
	}
}

type impl struct {
	store         offerstore.Provider
	applicationSt applicationstore.Provider
	catalog       statuscatalog.Provider
	notifier      notificationhandler.Provider
}

func (i impl) GenerateOffer(applicationID, actorID string, req screeningapimodels.OfferRequest) (offerapimodels.OfferView, error) {
	if err := req.Validate(); err != nil {
		return offerapimodels.OfferView{}, err
	}
	rec, err := i.applicationSt.GetByID(applicationID)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	if err = application.CheckTransitionTarget(rec); err != nil {
		return offerapimodels.OfferView{}, err
	}
	statusRec, err := i.catalog.GetByID(rec.StatusID)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	if models.ApplicationStatus(statusRec.Code) != models.ApplicationStatusSelected {
		return offerapimodels.OfferView{}, apperrors.Conflict("offer requires a selected application, current status is %s", statusRec.Code)
	}

	offerRec := dbmodels.OfferLetter{
		ApplicationID: applicationID,
		DocumentURL:   req.DocumentURL,
		IssuedBy:      actorID,
		IssuedAt:      time.Now(),
	}
	id, err := i.store.CreateOffer(offerRec)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	offerRec.ID = id
	i.getLogger(applicationID, actorID).
		WithField("offer_letter_id", id).
		Info("offer letter issued")
	i.notifier.OfferGenerated(id)
	return offerapimodels.OfferConvert(offerRec), nil
}

func (i impl) GetOffer(applicationID string) (offerapimodels.OfferView, error) {
	rec, err := i.store.GetOfferByApplication(applicationID)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	if rec == nil {
		return offerapimodels.OfferView{}, apperrors.NotFound("no offer letter for the application")
	}
	return offerapimodels.OfferConvert(*rec), nil
}

func (i impl) SubmitVerification(applicationID, actorID string, req screeningapimodels.OfferRequest) (offerapimodels.VerificationView, error) {
	if err := req.Validate(); err != nil {
		return offerapimodels.VerificationView{}, err
	}
	rec, err := i.applicationSt.GetByID(applicationID)
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	if err = application.CheckTransitionTarget(rec); err != nil {
		return offerapimodels.VerificationView{}, err
	}
	pendingStatusID, err := i.catalog.Resolve(models.StatusEntityVerification, string(models.VerificationStatusPending))
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	verificationRec := dbmodels.DocumentVerification{
		ApplicationID: applicationID,
		DocumentURL:   req.DocumentURL,
		StatusID:      pendingStatusID,
	}
	id, err := i.store.CreateVerification(verificationRec)
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	i.getLogger(applicationID, actorID).
		WithField("verification_id", id).
		Info("document submitted for verification")
	return i.getVerification(id)
}

// DecideVerification settles a pending item; a settled item never
// changes again.
func (i impl) DecideVerification(verificationID, actorID string, req screeningapimodels.VerificationDecisionRequest) (offerapimodels.VerificationView, error) {
	rec, err := i.store.GetVerificationByID(verificationID)
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	if rec == nil {
		return offerapimodels.VerificationView{}, apperrors.NotFound("document verification not found")
	}
	pendingStatusID, err := i.catalog.Resolve(models.StatusEntityVerification, string(models.VerificationStatusPending))
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	if rec.StatusID != pendingStatusID {
		return offerapimodels.VerificationView{}, apperrors.Conflict("document verification is already decided")
	}
	targetCode := models.VerificationStatusVerified
	if !req.Approved {
		targetCode = models.VerificationStatusRejected
	}
	targetStatusID, err := i.catalog.Resolve(models.StatusEntityVerification, string(targetCode))
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	now := time.Now()
	err = i.store.UpdateVerification(verificationID, map[string]interface{}{
		"status_id":  targetStatusID,
		"decided_by": actorID,
		"decided_at": now,
		"note":       req.Note,
	})
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	i.getLogger(rec.ApplicationID, actorID).
		WithField("verification_id", verificationID).
		WithField("approved", req.Approved).
		Info("document verification decided")
	i.notifier.VerificationDecided(verificationID)
	return i.getVerification(verificationID)
}

func (i impl) ListVerifications(applicationID string) ([]offerapimodels.VerificationView, error) {
	list, err := i.store.ListVerifications(applicationID)
	if err != nil {
		return nil, err
	}
	result := make([]offerapimodels.VerificationView, 0, len(list))
	for _, item := range list {
		result = append(result, offerapimodels.VerificationConvert(item))
	}
	return result, nil
}

func (i impl) getVerification(id string) (offerapimodels.VerificationView, error) {
	rec, err := i.store.GetVerificationByID(id)
	if err != nil {
		return offerapimodels.VerificationView{}, err
	}
	if rec == nil {
		return offerapimodels.VerificationView{}, apperrors.NotFound("document verification not found")
	}
	return offerapimodels.VerificationConvert(*rec), nil
}

func (i impl) getLogger(applicationID, actorID string) *log.Entry {
	return log.
		WithField("application_id", applicationID).
		WithField("actor_id", actorID)
}
