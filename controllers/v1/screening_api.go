package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/offer"
	"ats-backend/lib/screening"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	screeningapimodels "ats-backend/models/api/screening"
)

type screeningApiController struct {
	controllers.BaseAPIController
}

func InitScreeningApiRouters(app *fiber.App) {
	controller := screeningApiController{}
	app.Route("screening", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("shortlisted", controller.shortlisted)
		router.Post("stats", controller.stats)
		router.Get("pending_count", controller.pendingCount)
		router.Route("application/:id", func(idRoute fiber.Router) {
			idRoute.Put("screen", controller.screen)
			idRoute.Put("shortlist", controller.shortlist)
			idRoute.Post("offer", controller.generateOffer)
			idRoute.Get("offer", controller.getOffer)
			idRoute.Post("verification", controller.submitVerification)
			idRoute.Get("verification", controller.listVerifications)
		})
		router.Put("position/:id/reviewer", controller.assignReviewer)
		router.Put("candidate/:id/skills", controller.updateSkills)
		router.Put("verification/:id/decide", controller.decideVerification)
	})
}

// @Summary Screening queue
// @Tags Screening
// @Description Applications awaiting resume review
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.ScreeningFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/list [post]
func (c *screeningApiController) list(ctx *fiber.Ctx) error {
	var payload screeningapimodels.ScreeningFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := screening.Instance.ListForScreening(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Shortlist
// @Tags Screening
// @Description Shortlisted applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.ScreeningFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/shortlisted [post]
func (c *screeningApiController) shortlisted(ctx *fiber.Ctx) error {
	var payload screeningapimodels.ScreeningFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := screening.Instance.ListShortlisted(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Pipeline stats
// @Tags Screening
// @Description Application counts by status for a period
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.StatsFilter	true	"report period"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ScreeningStats}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/stats [post]
func (c *screeningApiController) stats(ctx *fiber.Ctx) error {
	var payload screeningapimodels.StatsFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := screening.Instance.Stats(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Screening backlog
// @Tags Screening
// @Description Pending application count across the caller's positions
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/pending_count [get]
func (c *screeningApiController) pendingCount(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	count, err := screening.Instance.PendingCount(userID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}

// @Summary Screen resume
// @Tags Screening
// @Description Record the review outcome and route the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.ScreenResumeRequest	true	"review outcome"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/screen [put]
func (c *screeningApiController) screen(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.ScreenResumeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := screening.Instance.ScreenResume(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Shortlist candidate
// @Tags Screening
// @Description Move the application to the shortlist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.ShortlistRequest	true	"shortlist comment"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/shortlist [put]
func (c *screeningApiController) shortlist(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.ShortlistRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := screening.Instance.ShortlistCandidate(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Assign reviewer
// @Tags Screening
// @Description Assign a resume reviewer to the position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.AssignReviewerRequest	true	"reviewer"
// @Param   id          		path    string	true	"position ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/position/{id}/reviewer [put]
func (c *screeningApiController) assignReviewer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.AssignReviewerRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = screening.Instance.AssignReviewer(id, userID, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update candidate skills
// @Tags Screening
// @Description Additive skill profile update collected during screening
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.SkillsUpdateRequest	true	"skills"
// @Param   id          		path    string	true	"candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/candidate/{id}/skills [put]
func (c *screeningApiController) updateSkills(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.SkillsUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = screening.Instance.UpdateCandidateSkills(id, userID, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Generate offer letter
// @Tags Screening
// @Description Record the offer letter for a selected application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.OfferRequest	true	"offer document"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/offer [post]
func (c *screeningApiController) generateOffer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.OfferRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := offer.Instance.GenerateOffer(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Offer letter
// @Tags Screening
// @Description The latest offer letter of the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/offer [get]
func (c *screeningApiController) getOffer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := offer.Instance.GetOffer(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit document
// @Tags Screening
// @Description Queue a document for verification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.OfferRequest	true	"document"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.VerificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/verification [post]
func (c *screeningApiController) submitVerification(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.OfferRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := offer.Instance.SubmitVerification(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Verification queue
// @Tags Screening
// @Description Document verifications of the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"application ID"
// @Success 200 {object} apimodels.Response{data=[]offerapimodels.VerificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/application/{id}/verification [get]
func (c *screeningApiController) listVerifications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := offer.Instance.ListVerifications(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Decide verification
// @Tags Screening
// @Description Settle a pending document verification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.VerificationDecisionRequest	true	"decision"
// @Param   id          		path    string	true	"verification ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.VerificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/verification/{id}/decide [put]
func (c *screeningApiController) decideVerification(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.VerificationDecisionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := offer.Instance.DecideVerification(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
