package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	req := require.New(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)

	auth := config.GetAuthConfig()
	req.Equal(7*24*time.Hour, auth.TokenTTL)
	req.Equal("chat_server", auth.Issuer)
	req.Equal("chat_web", auth.Audience)

	db := config.GetDatabaseConfig()
	req.Equal(300*time.Second, db.ConnMaxLifetime)
	req.Equal(10, db.MaxIdleConns)
	req.Equal("7720", config.GetAppConfig().Port)
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=chat-test\nDB_HOSTNAME=db.internal\nDB_USER=chat\nDB_NAME=chat\nAUTH_TOKEN_TTL=1h\n"
	req.NoError(os.WriteFile(path, []byte(content), 0600))
	t.Setenv("DB_PORT", "6543")

	config, err := LoadConfig(path)
	req.NoError(err)

	req.Equal("chat-test", config.GetAppConfig().Name)
	req.Equal(time.Hour, config.GetAuthConfig().TokenTTL)

	db := config.GetDatabaseConfig()
	req.Equal("db.internal", db.Host)
	req.Equal("6543", db.Port)
	req.Equal("host=db.internal user=chat password= dbname=chat port=6543 sslmode=disable TimeZone=UTC", db.DSN())
}
