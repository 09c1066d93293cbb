package notificationhandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	"ats-backend/lib/smtp"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	wsmodels "ats-backend/models/ws"
)

const (
	EventStageChange        = "stage_change"
	EventInterviewScheduled = "interview_scheduled"
	EventOfferGenerated     = "offer_generated"
	EventVerificationDone   = "verification_decided"
)

// Provider is the boundary with the notification/email collaborator.
// Every method is fire-and-forget: dispatch happens outside the
// caller's transaction and a failure is logged, never propagated.
type Provider interface {
	StageChanged(applicationID, oldStatusID, newStatusID string)
	InterviewScheduled(interviewID string)
	OfferGenerated(offerLetterID string)
	VerificationDecided(verificationID string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		hub:         connectionhub.Instance,
		mail:        smtp.Instance,
		notifyEmail: config.Conf.Smtp.NotifyEmail,
	}
}

type impl struct {
	hub         connectionhub.Provider
	mail        smtp.Provider
	notifyEmail string
}

type stageChangePayload struct {
	ApplicationID string `json:"application_id"`
	OldStatusID   string `json:"old_status_id"`
	NewStatusID   string `json:"new_status_id"`
}

func (i impl) StageChanged(applicationID, oldStatusID, newStatusID string) {
	msg := fmt.Sprintf("application %s moved to a new stage", applicationID)
	i.dispatch(EventStageChange, msg, stageChangePayload{
		ApplicationID: applicationID,
		OldStatusID:   oldStatusID,
		NewStatusID:   newStatusID,
	})
}

func (i impl) InterviewScheduled(interviewID string) {
	msg := fmt.Sprintf("interview %s scheduled", interviewID)
	i.dispatch(EventInterviewScheduled, msg, map[string]string{"interview_id": interviewID})
}

func (i impl) OfferGenerated(offerLetterID string) {
	msg := fmt.Sprintf("offer letter %s generated", offerLetterID)
	i.dispatch(EventOfferGenerated, msg, map[string]string{"offer_letter_id": offerLetterID})
}

func (i impl) VerificationDecided(verificationID string) {
	msg := fmt.Sprintf("document verification %s decided", verificationID)
	i.dispatch(EventVerificationDone, msg, map[string]string{"verification_id": verificationID})
}

func (i impl) dispatch(code, msg string, payload interface{}) {
	go func() {
		logger := log.
			WithField("event_code", code).
			WithField("description", msg)
		i.hub.Broadcast(wsmodels.ServerMessage{
			Time: time.Now().Format("02.01.2006 15:04:05"),
			Code: code,
			Msg:  msg,
			Data: payload,
		})
		if i.notifyEmail != "" {
			if err := i.mail.SendEMail(i.notifyEmail, code, msg); err != nil {
				logger.WithError(err).Error("event mail delivery failed")
			}
		}
		logger.Info("event dispatched")
	}()
}
