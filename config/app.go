package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/config/common"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/handler"
	"workspace-chat-app/middleware"
	"workspace-chat-app/repository"
	"workspace-chat-app/routes"
	"workspace-chat-app/security"
	"workspace-chat-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func RunServer(configFile string) error {
	newConfig, err := common.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appCfg := newConfig.GetAppConfig()
	logCfg := newConfig.GetLogConfig()
	authCfg := newConfig.GetAuthConfig()

	log := NewLogrus(logCfg)
	appLog := logger.NewLogger(logger.Options{Dir: logCfg.Dir, Level: logCfg.Level})

	keys, err := security.LoadKeyPair(authCfg.PrivateKeyPath, authCfg.PublicKeyPath)
	if err != nil {
		log.WithError(err).Error("Failed to load signing key")
		return err
	}
	newJWT := security.NewJWT(keys, security.TokenConfig{
		Issuer:   authCfg.Issuer,
		Audience: authCfg.Audience,
		TTL:      authCfg.TokenTTL,
	})

	newDB, err := NewDB(newConfig.GetDatabaseConfig(), appLog)
	if err != nil {
		return err
	}
	defer newDB.Close()

	app := NewFiber(appCfg, log)
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.ServerTime)
	app.Use(cors.New(cors.Config{
		AllowOrigins:  appCfg.CorsAllowOrigins,
		AllowMethods:  "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: middleware.HeaderServerTime,
	}))

	if err := App(&AppConfig{
		App:        app,
		Validate:   NewValidator(),
		Logger:     log,
		AppLogger:  appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: middleware.NewMiddleware(newJWT, log),
	}); err != nil {
		return err
	}

	log.Infof("Starting %s on port %s", appCfg.Name, appCfg.Port)
	if err := app.Listen(":" + appCfg.Port); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
		return err
	}
	return nil
}

// App wires repositories, usecases and handlers onto aC.App.
func App(aC *AppConfig) error {
	db := aC.DBConfig.GetDB()
	tx := repository.NewTransactor(db)

	newUserRepository := repository.NewUserRepository()
	newWorkspaceRepository := repository.NewWorkspaceRepository()
	newChatRepository := repository.NewChatRepository()
	newMessageRepository := repository.NewMessageRepository()

	newAuthUsecase, err := usecase.NewAuthUsecase(newUserRepository, newWorkspaceRepository, aC.Validate, db, tx, aC.AppLogger, aC.JWT)
	if err != nil {
		return fmt.Errorf("creating auth usecase: %w", err)
	}
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, db, aC.AppLogger)
	newWorkspaceUsecase := usecase.NewWorkspaceUsecase(newWorkspaceRepository, newUserRepository, db, aC.AppLogger)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, newUserRepository, aC.Validate, db, tx, aC.AppLogger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatUsecase, aC.Validate, db, aC.AppLogger)

	route := routes.ConfigRoute{
		App:         aC.App,
		Middleware:  aC.Middleware,
		AuthHandler: handler.NewAuthHandler(newAuthUsecase, aC.Logger),
		UserHandler: handler.NewUserHandler(newUserUsecase, newWorkspaceUsecase, aC.Logger),
		ChatHandler: handler.NewChatHandler(newChatUsecase, newWorkspaceUsecase, newMessageUsecase, aC.Logger),
	}
	route.GetRoute()
	return nil
}
