package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15

[database]
host = "localhost"
port = 5432
user = "parking"
password = "secret"
dbname = "parking_service"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "parking-service"

[userservice]
url = "http://localhost:8081"
timeout = 5
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "parking_service", cfg.Database.DBName)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:8081", cfg.UserService.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	assert.Error(t, err)
}

func TestLoad_RequiredFields(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabase_DSN(t *testing.T) {
	db := Database{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "parking",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=parking sslmode=disable", db.DSN())
}
