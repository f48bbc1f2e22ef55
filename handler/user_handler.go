package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/apperror"
	"workspace-chat-app/dto/res"
	"workspace-chat-app/entity"
	"workspace-chat-app/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	WorkspaceUsecase usecase.WorkspaceUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, workspaceUsecase usecase.WorkspaceUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, WorkspaceUsecase: workspaceUsecase, Logger: logger}
}

func (handler *UserHandler) GetUserByToken(ctx *fiber.Ctx) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return err
	}

	user, err := handler.UserUsecase.GetByID(ctx.Context(), identity.ID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by token")
		return err
	}

	response := res.CommonResponse[entity.Identity]{
		Message:    "Successfully To Get User By ID",
		StatusCode: fiber.StatusOK,
		Data:       user,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// GetAllUsers lists the users of the caller's workspace.
func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return err
	}

	users, err := handler.WorkspaceUsecase.ListUsers(ctx.Context(), identity.WorkspaceID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to list workspace users")
		return err
	}

	responses := res.CommonResponse[[]entity.Identity]{
		Message:    "Successfully To Get All User",
		StatusCode: fiber.StatusOK,
		Data:       users,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) GetWorkspace(ctx *fiber.Ctx) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return err
	}

	workspace, err := handler.WorkspaceUsecase.FindByID(ctx.Context(), identity.WorkspaceID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get workspace")
		return err
	}
	if workspace == nil {
		return apperror.ErrWorkspaceMissing
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Message:    "Successfully To Get Workspace",
		StatusCode: fiber.StatusOK,
		Data:       res.NewWorkspaceResponse(workspace),
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
