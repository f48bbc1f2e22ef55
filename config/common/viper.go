package common

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

const DefaultConfigFile = ".env"

type Config struct {
	Viper *viper.Viper
}

type AppConfig struct {
	Name             string
	Port             string
	Env              string
	CorsAllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	User            string
	Password        string
	Name            string
	Port            string
	SSLMode         string
	TimeZone        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone,
	)
}

type AuthConfig struct {
	PrivateKeyPath string
	PublicKeyPath  string
	TokenTTL       time.Duration
	Issuer         string
	Audience       string
}

type LogConfig struct {
	Level string
	Dir   string
}

// NewViper reads configFile when it exists and lets environment variables
// override any key. A missing file is fine; a broken one panics.
func NewViper(configFile string) *Config {
	config, err := LoadConfig(configFile)
	if err != nil {
		panic(fmt.Sprintf("failed read config: %v", err))
	}
	return config
}

func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	config := viper.New()
	setDefaults(config)
	config.SetConfigFile(configFile)
	config.SetConfigType("env")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	log.Tracef("Checking file %s ....", configFile)
	if err := config.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Debugf("%s not found, using environment only", configFile)
	}
	return &Config{Viper: config}, nil
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("APP_NAME", "workspace-chat-app")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("APP_ENV", "development")
	config.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:8080")

	config.SetDefault("DB_HOSTNAME", "localhost")
	config.SetDefault("DB_PORT", "5432")
	config.SetDefault("DB_SSLMODE", "disable")
	config.SetDefault("DB_TIMEZONE", "UTC")
	config.SetDefault("DB_MAX_IDLE_CONNS", 10)
	config.SetDefault("DB_MAX_OPEN_CONNS", 100)
	config.SetDefault("DB_CONN_MAX_LIFETIME", "300s")

	config.SetDefault("AUTH_PRIVATE_KEY_PATH", "keys/auth.pem")
	config.SetDefault("AUTH_PUBLIC_KEY_PATH", "keys/auth.pub.pem")
	config.SetDefault("AUTH_TOKEN_TTL", "168h")
	config.SetDefault("AUTH_ISSUER", "chat_server")
	config.SetDefault("AUTH_AUDIENCE", "chat_web")

	config.SetDefault("LOG_LEVEL", "info")
	config.SetDefault("LOG_DIR", "logs")
}

func (c *Config) GetAppConfig() AppConfig {
	return AppConfig{
		Name:             c.Viper.GetString("APP_NAME"),
		Port:             c.Viper.GetString("APP_PORT"),
		Env:              c.Viper.GetString("APP_ENV"),
		CorsAllowOrigins: c.Viper.GetString("CORS_ALLOW_ORIGINS"),
	}
}

func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:            c.Viper.GetString("DB_HOSTNAME"),
		User:            c.Viper.GetString("DB_USER"),
		Password:        c.Viper.GetString("DB_PASSWORD"),
		Name:            c.Viper.GetString("DB_NAME"),
		Port:            c.Viper.GetString("DB_PORT"),
		SSLMode:         c.Viper.GetString("DB_SSLMODE"),
		TimeZone:        c.Viper.GetString("DB_TIMEZONE"),
		MaxIdleConns:    c.Viper.GetInt("DB_MAX_IDLE_CONNS"),
		MaxOpenConns:    c.Viper.GetInt("DB_MAX_OPEN_CONNS"),
		ConnMaxLifetime: c.Viper.GetDuration("DB_CONN_MAX_LIFETIME"),
	}
}

func (c *Config) GetAuthConfig() AuthConfig {
	return AuthConfig{
		PrivateKeyPath: c.Viper.GetString("AUTH_PRIVATE_KEY_PATH"),
		PublicKeyPath:  c.Viper.GetString("AUTH_PUBLIC_KEY_PATH"),
		TokenTTL:       c.Viper.GetDuration("AUTH_TOKEN_TTL"),
		Issuer:         c.Viper.GetString("AUTH_ISSUER"),
		Audience:       c.Viper.GetString("AUTH_AUDIENCE"),
	}
}

func (c *Config) GetLogConfig() LogConfig {
	return LogConfig{
		Level: c.Viper.GetString("LOG_LEVEL"),
		Dir:   c.Viper.GetString("LOG_DIR"),
	}
}
