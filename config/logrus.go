package config

import (
	"os"

	"github.com/sirupsen/logrus"

	"workspace-chat-app/config/common"
)

// NewLogrus is the request logger used by handlers and middleware.
func NewLogrus(cfg common.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
