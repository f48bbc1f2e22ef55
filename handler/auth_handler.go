package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/dto/req"
	"workspace-chat-app/dto/res"
	"workspace-chat-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUseCase, Logger: logger}
}

func (handler *AuthHandler) Signup(ctx *fiber.Ctx) error {
	// parse request
	payload := new(req.SignupRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}
	// get from useCase
	identity, token, err := handler.AuthUsecase.Signup(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to sign up: %v", err)
		return err
	}
	// response
	response := res.CommonResponse[res.SignupResponse]{
		Message:    "Successfully signed up",
		StatusCode: fiber.StatusCreated,
		Data:       res.SignupResponse{Token: token, User: identity},
	}
	handler.Logger.Infof("Success sign up user with id: %d", identity.ID)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AuthHandler) Signin(ctx *fiber.Ctx) error {
	payload := new(req.SigninRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	token, err := handler.AuthUsecase.Signin(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to sign in")
		return err
	}

	response := res.CommonResponse[res.AuthResponse]{
		Message:    "Successfully signed in",
		StatusCode: fiber.StatusOK,
		Data:       res.AuthResponse{Token: token},
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
