package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/apperror"
	"workspace-chat-app/dto/res"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindConflict:       fiber.StatusConflict,
	apperror.KindValidation:     fiber.StatusBadRequest,
	apperror.KindUnauthorized:   fiber.StatusUnauthorized,
	apperror.KindForbidden:      fiber.StatusForbidden,
	apperror.KindNotFound:       fiber.StatusNotFound,
	apperror.KindInfrastructure: fiber.StatusInternalServerError,
}

// NewErrorHandler turns every error a handler returns into an ErrorResponse.
// Infrastructure failures are logged and answered without detail.
func NewErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(res.ErrorResponse{
				Status:     utils.StatusMessage(fiberErr.Code),
				StatusCode: fiberErr.Code,
				Error:      fiberErr.Message,
			})
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && !errors.Is(err, apperror.ErrInvalidRequest) {
			err = apperror.Wrap(apperror.ErrInvalidRequest, err)
		}

		var appErr *apperror.Error
		if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInfrastructure {
			logger.WithError(err).WithField("path", c.Path()).Error("Request failed")
			return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
				Status:     utils.StatusMessage(fiber.StatusInternalServerError),
				StatusCode: fiber.StatusInternalServerError,
				Error:      "internal server error",
			})
		}

		status := statusByKind[appErr.Kind]
		body := res.ErrorResponse{
			Status:     utils.StatusMessage(status),
			StatusCode: status,
			Code:       appErr.Code,
			Error:      appErr.Message,
		}
		if len(validationErrs) > 0 {
			body.Error = validationMessages(validationErrs)
		}
		return c.Status(status).JSON(body)
	}
}

func validationMessages(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		messages[fieldErr.Field()] = "failed on " + fieldErr.Tag()
	}
	return messages
}
