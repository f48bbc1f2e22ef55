package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/config/common"
	"workspace-chat-app/middleware"
)

func NewFiber(cfg common.AppConfig, log *logrus.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       cfg.Name,
		ErrorHandler:  middleware.NewErrorHandler(log),
	})
}
