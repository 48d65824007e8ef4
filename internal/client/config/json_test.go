package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"www.example:9000","request_timeout":"2s"}`), 0o600))

	t.Run("applies present fields only", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{OnlineCheckInterval: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.ServerEndpointAddr)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("no file flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerEndpointAddr: "defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.ServerEndpointAddr)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
