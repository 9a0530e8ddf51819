package client

import (
	"encoding/json"
	"net"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannblw/battband/pkg/monitor"
)

// startTestServer serves the handler on a unix socket in a temp dir and
// returns the socket path.
func startTestServer(t *testing.T, handler http.Handler) string {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "battband.sock")
	l, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	srv := &http.Server{Handler: handler}
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { _ = srv.Close() })

	return socketPath
}

func TestGetStatusDecodes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(monitor.Status{
			Percent:  42,
			Charging: true,
			Armed:    true,
		})
	})

	c := NewClient(startTestServer(t, mux))

	status, err := c.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 42, status.Percent)
	assert.True(t, status.Charging)
	assert.True(t, status.Armed)
}

func TestForceCheckDecodesWarning(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"status":{"percent":15,"armed":false},"warning":"no active session"}`))
	})

	c := NewClient(startTestServer(t, mux))

	status, warning, err := c.ForceCheck()
	require.NoError(t, err)
	assert.Equal(t, 15, status.Percent)
	assert.False(t, status.Armed)
	assert.Equal(t, "no active session", warning)
}

func TestGetVersionDecodes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"version":"1.2.3","gitCommit":"abc1234"}`))
	})

	c := NewClient(startTestServer(t, mux))

	version, commit, err := c.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)
}

func TestNon2xxResponseIsAnError(t *testing.T) {
	// Empty mux: every path is a 404.
	c := NewClient(startTestServer(t, http.NewServeMux()))

	_, err := c.GetStatus()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestMissingSocketIsAnError(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "gone.sock"))

	_, err := c.GetStatus()
	require.Error(t, err)
}
