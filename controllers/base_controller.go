package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/lib/utils/apperrors"
	apimodels "ats-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is not specified")
	}
	return id, nil
}

// SendError maps the workflow error kind to the HTTP status.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(apperrors.HTTPStatus(err)).JSON(apimodels.NewError(err.Error()))
}
