package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv(EnvStorageDriver, "memory")
	t.Setenv(EnvDatabaseDSN, "postgres://env")
	t.Setenv(EnvBcryptCost, "4")
	t.Setenv(EnvResetTokenTTL, "30m")
	t.Setenv(EnvS3Bucket, "videos")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenValidityDuration)
	assert.Equal(t, "videos", cfg.S3Bucket)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "griot.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIOT_LOG_LEVEL=debug\nGRIOT_SECRET_KEY=from-file\n"), 0o600))

	// Process environment wins over the file.
	t.Setenv(EnvSecretKey, "from-env")
	// godotenv sets variables it loads; make sure they are cleaned up.
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	os.Args = []string{"testbin", "-env-file", path}

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-env", cfg.SecretKey)
}

func TestParseEnv_BadNumberPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv(EnvPasswordMinLength, "eight")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestParseEnv_MissingEnvFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env-file", filepath.Join(t.TempDir(), "nope.env")}

	require.Panics(t, func() { parseEnv(defaults()) })
}
