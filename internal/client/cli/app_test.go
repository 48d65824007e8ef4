package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/griotme/griot/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	a, err := NewApp(&config.Config{ServerEndpointAddr: "localhost:0"})
	require.NoError(t, err)
	require.NotNil(t, a.api)
	require.NoError(t, a.api.Close())
}

func TestSetMode_AnnouncesChangesOnly(t *testing.T) {
	a, out := newTestApp(t, &fakeAPI{}, "", "")

	a.setMode(ModeOnline)
	a.setMode(ModeOnline)
	a.setMode(ModeOffline)

	assert.Equal(t, "Switched to online mode\nSwitched to offline mode\n", out.String())
}

func TestOnlineStatusWatcher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &fakeAPI{pingErr: errors.New("unavailable"), onPing: cancel}
	a, _ := newTestApp(t, f, "", "")
	a.Mode = ModeOnline

	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Equal(t, ModeOffline, a.Mode)
}

func TestRun_ClosesClient(t *testing.T) {
	f := &fakeAPI{}
	a, out := newTestApp(t, f, "exit\n", "")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to griot CLI")
	assert.Contains(t, f.calls, "Close")
}
