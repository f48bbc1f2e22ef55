package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"workspace-chat-app/config/common"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(cfg common.DatabaseConfig, log *logger.AppLogger) (*DBConfig, error) {
	db, err := initDatabase(cfg, log)
	if err != nil {
		return nil, err
	}
	return &DBConfig{DB: db, AppLogger: log}, nil
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

// Close releases the underlying connection pool.
func (db *DBConfig) Close() error {
	conn, err := db.DB.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// NamingStrategy maps entity.ChatMember to t_chat_member and so on.
var NamingStrategy = schema.NamingStrategy{
	TablePrefix:   "t_",
	SingularTable: true,
}

func initDatabase(cfg common.DatabaseConfig, log *logger.AppLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		NamingStrategy: NamingStrategy,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Http.Error.Error().Err(err).Str("host", cfg.Host).Msg("Failed to connect to database")
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	log.Http.Info.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Connection opened to database")

	conn, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting connection pool: %w", err)
	}

	if err := Migrate(db); err != nil {
		log.Http.Error.Error().Err(err).Msg("Failed to run migration")
		return nil, err
	}

	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	var workspace entity.Workspace
	var user entity.User
	var chat entity.Chat
	var chatMember entity.ChatMember
	var message entity.Message
	if err := db.AutoMigrate(&workspace, &user, &chat, &chatMember, &message); err != nil {
		return fmt.Errorf("running migration: %w", err)
	}
	return nil
}
