// Package testutil holds helpers shared by package tests.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

// LogsEnv enables test log output when set to "true".
const LogsEnv = "FLOORPLAN_TEST_LOGS"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a context carrying a debug logger that writes into the
// returned buffer. The captured output is dumped at cleanup when LogsEnv is
// set.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv(LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// WriteFiles writes files, keyed by slash-separated relative path, into a
// fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}
