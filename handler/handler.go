package handler

import (
	"github.com/gofiber/fiber/v2"

	"workspace-chat-app/apperror"
	"workspace-chat-app/entity"
	"workspace-chat-app/middleware"
)

func currentIdentity(c *fiber.Ctx) (entity.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return entity.Identity{}, apperror.ErrInvalidToken
	}
	return identity, nil
}

func chatIDParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperror.Detail(apperror.ErrInvalidArgument, "chat id must be a positive integer")
	}
	return int64(id), nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Wrap(apperror.ErrInvalidRequest, err)
	}
	return nil
}
