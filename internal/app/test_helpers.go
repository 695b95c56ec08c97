package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/mkvimball/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. stdin feeds
// the interactive prompt. It returns the app, its captured logs, and its
// captured stdout.
func SetupAppTest(t *testing.T, appConfig *Config, stdin string, loader config.Loader) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	testApp := NewApp(strings.NewReader(stdin), outBuffer, logBuffer, appConfig, loader)

	t.Cleanup(func() {
		if os.Getenv("MKVIMBALL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer, outBuffer
}
