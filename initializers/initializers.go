package initializers

import (
	"context"

	"ats-backend/config"
	"ats-backend/fiberlog"
	"ats-backend/lib/application"
	statuscatalog "ats-backend/lib/dicts/status"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/lib/interview"
	notificationhandler "ats-backend/lib/notification"
	"ats-backend/lib/offer"
	"ats-backend/lib/reporting"
	"ats-backend/lib/scoring"
	"ats-backend/lib/screening"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires the singletons in dependency order: storage and
// collaborators first, then the status catalog cache, then the
// workflow handlers built on top of it.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	connectionhub.Init()
	if err := statuscatalog.NewHandler(); err != nil {
		panic(err.Error())
	}
	notificationhandler.NewHandler()
	application.NewHandler()
	scoring.NewHandler()
	screening.NewHandler()
	interview.NewHandler()
	offer.NewHandler()
	xlsexport.NewHandler()
	reporting.NewHandler()
}
