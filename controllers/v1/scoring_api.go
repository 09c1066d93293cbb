package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/scoring"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	scoringapimodels "ats-backend/models/api/scoring"
)

type scoringApiController struct {
	controllers.BaseAPIController
}

func InitScoringApiRouters(app *fiber.App) {
	controller := scoringApiController{}
	app.Route("scoring", func(router fiber.Router) {
		router.Route("application/:id", func(idRoute fiber.Router) {
			idRoute.Post("calculate", controller.calculate)
			idRoute.Get("", controller.getLatest)
		})
		router.Put("position/:id/weights", controller.setWeights)
	})
}

// @Summary Calculate score
// @Tags Scoring
// @Description Run the weighted score calculation on demand
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=scoringapimodels.ScoreView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/scoring/application/{id}/calculate [post]
func (c *scoringApiController) calculate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := scoring.Instance.Calculate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Latest score
// @Tags Scoring
// @Description The most recent calculated score with its breakdown
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=scoringapimodels.ScoreView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/scoring/application/{id} [get]
func (c *scoringApiController) getLatest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := scoring.Instance.GetLatest(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Configure weights
// @Tags Scoring
// @Description Replace the active weight configuration of the position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scoringapimodels.WeightConfigData	true	"weights"
// @Param   id          		path    string	true	"position ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/scoring/position/{id}/weights [put]
func (c *scoringApiController) setWeights(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload scoringapimodels.WeightConfigData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	userID := middleware.GetUserID(ctx)
	configID, err := scoring.Instance.SetConfig(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(configID))
}
