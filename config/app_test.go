package config

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"workspace-chat-app/config/common"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/middleware"
	"workspace-chat-app/security"
)

func TestAppRegistersRoutes(t *testing.T) {
	req := require.New(t)
	keys, err := security.GenerateKeyPair()
	req.NoError(err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	jwt := security.NewJWT(keys, security.TokenConfig{})
	app := NewFiber(common.AppConfig{Name: "test"}, log)
	app.Use(middleware.ServerTime)

	req.NoError(App(&AppConfig{
		App:        app,
		Validate:   NewValidator(),
		Logger:     log,
		AppLogger:  logger.NewNop(),
		DBConfig:   &DBConfig{},
		JWT:        jwt,
		Middleware: middleware.NewMiddleware(jwt, log),
	}))

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	req.NoError(err)
	req.Equal(http.StatusOK, response.StatusCode)
	req.NotEmpty(response.Header.Get(middleware.HeaderServerTime))

	response, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/chats", nil), -1)
	req.NoError(err)
	req.Equal(http.StatusUnauthorized, response.StatusCode)
}

func TestNewLogrusFallsBackToInfo(t *testing.T) {
	req := require.New(t)
	req.Equal(logrus.DebugLevel, NewLogrus(common.LogConfig{Level: "debug"}).GetLevel())
	req.Equal(logrus.InfoLevel, NewLogrus(common.LogConfig{Level: "loud"}).GetLevel())
}
