package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/reporting"
	apimodels "ats-backend/models/api"
	reportapimodels "ats-backend/models/api/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Post("funnel", controller.funnel)
		router.Post("conversions", controller.conversions)
		router.Post("time_to_hire", controller.timeToHire)
		router.Post("funnel/export", controller.exportFunnel)
	})
}

// @Summary Hiring funnel
// @Tags Reports
// @Description Applications that ever reached each pipeline stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.ReportFilter	true	"report filter"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.FunnelRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/funnel [post]
func (c *reportApiController) funnel(ctx *fiber.Ctx) error {
	var payload reportapimodels.ReportFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reporting.Instance.Funnel(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Stage conversions
// @Tags Reports
// @Description Conversion rates between adjacent pipeline stages
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.ReportFilter	true	"report filter"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.ConversionRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/conversions [post]
func (c *reportApiController) conversions(ctx *fiber.Ctx) error {
	var payload reportapimodels.ReportFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reporting.Instance.Conversions(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Time to hire
// @Tags Reports
// @Description Submission-to-selection durations in days
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.ReportFilter	true	"report filter"
// @Success 200 {object} apimodels.Response{data=reportapimodels.TimeToHireView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/time_to_hire [post]
func (c *reportApiController) timeToHire(ctx *fiber.Ctx) error {
	var payload reportapimodels.ReportFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reporting.Instance.TimeToHire(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Funnel export
// @Tags Reports
// @Description Hiring funnel as an xlsx document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.ReportFilter	true	"report filter"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/funnel/export [post]
func (c *reportApiController) exportFunnel(ctx *fiber.Ctx) error {
	var payload reportapimodels.ReportFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := reporting.Instance.ExportFunnel(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="funnel.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
