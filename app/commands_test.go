package main

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dusk/app/theme"
)

type proberFunc func(ctx context.Context) bool

func (f proberFunc) PrefersDark(ctx context.Context) bool { return f(ctx) }

func staticProber(dark bool) proberFunc {
	return func(context.Context) bool { return dark }
}

func TestServerCmd_Execute(t *testing.T) {
	for _, persist := range []string{"cookie", "db"} {
		t.Run(persist, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			port := freePort(t)

			cmd := &ServerCmd{DB: filepath.Join(t.TempDir(), "test.db"), Persist: persist, CacheSize: 10, ctx: ctx}
			cmd.Server.Address = fmt.Sprintf("127.0.0.1:%d", port)
			cmd.Server.ReadTimeout = 5 * time.Second
			cmd.Server.ShutdownTimeout = time.Second

			errCh := make(chan error, 1)
			go func() { errCh <- cmd.Execute(nil) }()

			base := fmt.Sprintf("http://127.0.0.1:%d", port)
			waitForServer(t, base+"/ping")

			client := &http.Client{Timeout: 5 * time.Second}
			req, err := http.NewRequest(http.MethodPut, base+"/api/v1/theme", strings.NewReader(`{"theme":"dark"}`))
			require.NoError(t, err)
			resp, err := client.Do(req)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			cancel()
			select {
			case err := <-errCh:
				require.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not shut down in time")
			}
		})
	}
}

func TestServerCmd_InvalidBaseURL(t *testing.T) {
	cmd := &ServerCmd{Persist: "cookie", ctx: context.Background()}
	cmd.Server.BaseURL = "dusk"
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func TestServerCmd_InvalidDB(t *testing.T) {
	cmd := &ServerCmd{DB: "/nonexistent/path/to/db.db", Persist: "db", ctx: context.Background()}
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize store")
}

func TestTerminalCommands(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "test.db")
	var out bytes.Buffer
	shared := SharedOptions{DB: dbFile, Client: "local", out: &out, prober: staticProber(true)}

	t.Run("get follows system", func(t *testing.T) {
		out.Reset()
		require.NoError(t, (&GetCmd{SharedOptions: shared}).Execute(nil))
		assert.Contains(t, out.String(), "dark (system, preference system)")
		assert.Contains(t, out.String(), "☾")
	})

	t.Run("set light", func(t *testing.T) {
		out.Reset()
		cmd := &SetCmd{SharedOptions: shared}
		cmd.Args.Theme = "light"
		require.NoError(t, cmd.Execute(nil))
		assert.Contains(t, out.String(), "light (explicit, preference light)")
		assert.Contains(t, out.String(), "☀")
	})

	t.Run("get reads persisted", func(t *testing.T) {
		out.Reset()
		require.NoError(t, (&GetCmd{SharedOptions: shared}).Execute(nil))
		assert.Contains(t, out.String(), "light (persisted, preference light)")
	})

	t.Run("set invalid", func(t *testing.T) {
		out.Reset()
		cmd := &SetCmd{SharedOptions: shared}
		cmd.Args.Theme = "purple"
		err := cmd.Execute(nil)
		require.ErrorIs(t, err, theme.ErrInvalidTheme)
		assert.Empty(t, out.String())
	})

	t.Run("toggle", func(t *testing.T) {
		out.Reset()
		require.NoError(t, (&ToggleCmd{SharedOptions: shared}).Execute(nil))
		assert.Contains(t, out.String(), "dark (explicit, preference dark)")
	})

	t.Run("other client is independent", func(t *testing.T) {
		out.Reset()
		other := shared
		other.Client = "other"
		other.prober = staticProber(false)
		require.NoError(t, (&GetCmd{SharedOptions: other}).Execute(nil))
		assert.Contains(t, out.String(), "light (system, preference system)")
	})

	t.Run("no icons", func(t *testing.T) {
		out.Reset()
		noIcons := shared
		noIcons.NoIcons = true
		require.NoError(t, (&GetCmd{SharedOptions: noIcons}).Execute(nil))
		assert.NotContains(t, out.String(), "☾")
		assert.NotContains(t, out.String(), "☀")
	})

	t.Run("set system", func(t *testing.T) {
		out.Reset()
		cmd := &SetCmd{SharedOptions: shared}
		cmd.Args.Theme = "system"
		require.NoError(t, cmd.Execute(nil))
		assert.Contains(t, out.String(), "dark (system, preference system)")
	})
}

func TestWatchCmd(t *testing.T) {
	var dark atomic.Bool
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := &WatchCmd{
		SharedOptions: SharedOptions{DB: filepath.Join(t.TempDir(), "test.db"), Client: "local", out: out,
			prober: proberFunc(func(context.Context) bool { return dark.Load() })},
		Interval: 10 * time.Millisecond,
		ctx:      ctx,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Execute(nil) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "light (system, preference system)")
	}, 2*time.Second, 10*time.Millisecond)

	dark.Store(true)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "dark (system, preference system)")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchCmd_ExplicitPreferenceWins(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "test.db")
	shared := SharedOptions{DB: dbFile, Client: "local", out: &bytes.Buffer{}, prober: staticProber(false)}
	set := &SetCmd{SharedOptions: shared}
	set.Args.Theme = "light"
	require.NoError(t, set.Execute(nil))

	var dark atomic.Bool
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	cmd := &WatchCmd{
		SharedOptions: SharedOptions{DB: dbFile, Client: "local", out: out,
			prober: proberFunc(func(context.Context) bool { return dark.Load() })},
		Interval: 10 * time.Millisecond,
		ctx:      ctx,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Execute(nil) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "light (persisted, preference light)")
	}, 2*time.Second, 10*time.Millisecond)
	dark.Store(true)
	time.Sleep(100 * time.Millisecond)
	cancel()
	require.NoError(t, <-errCh)
	assert.NotContains(t, out.String(), "dark")
}

func TestExportImportCmd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	shared := SharedOptions{DB: src, Client: "local", out: &bytes.Buffer{}, prober: staticProber(false)}
	set := &SetCmd{SharedOptions: shared}
	set.Args.Theme = "dark"
	require.NoError(t, set.Execute(nil))

	var out bytes.Buffer
	require.NoError(t, (&ExportCmd{DB: src, Format: "yaml", out: &out}).Execute(nil))
	assert.Contains(t, out.String(), "local: dark")

	file := filepath.Join(dir, "prefs.json")
	require.NoError(t, (&ExportCmd{DB: src, Output: file}).Execute(nil))

	dst := filepath.Join(dir, "dst.db")
	imp := &ImportCmd{DB: dst}
	imp.Args.File = file
	require.NoError(t, imp.Execute(nil))

	var status bytes.Buffer
	get := &GetCmd{SharedOptions: SharedOptions{DB: dst, Client: "local", out: &status, prober: staticProber(false)}}
	require.NoError(t, get.Execute(nil))
	assert.Contains(t, status.String(), "dark (persisted, preference dark)")

	imp.Args.File = filepath.Join(dir, "missing.json")
	require.Error(t, imp.Execute(nil))
}

// syncBuffer is a bytes.Buffer safe for a concurrent writer and reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
