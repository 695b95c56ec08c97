// Package testutil holds the integration-test harness shared by the
// end-to-end test suites.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/mkvimball/internal/app"
	"github.com/specialistvlad/mkvimball/internal/cli"
	"github.com/specialistvlad/mkvimball/internal/hcl"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string // working directory the run happened in
	LogOutput string
	Stdout    string
	Err       error
	ExitCode  int // what main would exit with
}

// Archive reads the named archive from the run's directory. It fails the
// test if the file does not exist.
func (r *HarnessResult) Archive(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(data)
}

// WriteFiles creates files (relative path -> content) under root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, stdin string, args ...string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, stdin, args...)
}

// RunIntegrationTestWithContext runs the whole CLI path (argument parsing,
// app construction, archive run) inside a fresh temporary working directory
// populated with files. It changes the working directory, so callers must
// not use t.Parallel.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, stdin string, args ...string) *HarnessResult {
	t.Helper()

	// 1. Create and enter a temporary root directory for the test.
	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)
	t.Chdir(tmpDir)

	result := &HarnessResult{Dir: tmpDir}

	// 2. Parse the arguments the same way main does.
	stdout := &app.SafeBuffer{}
	appConfig, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		result.Err = err
		result.ExitCode = 1
		if exitErr, ok := err.(*cli.ExitError); ok {
			result.ExitCode = exitErr.Code
		}
		result.Stdout = stdout.String()
		return result
	}
	if shouldExit {
		result.Stdout = stdout.String()
		return result
	}

	// 3. Build and run the app with captured streams.
	appConfig.LogLevel = "debug"
	testApp, logBuffer, outBuffer := app.SetupAppTest(t, appConfig, stdin, hcl.NewLoader())
	result.Err = testApp.Run(ctx)
	if result.Err != nil {
		result.ExitCode = 1
	}
	result.LogOutput = logBuffer.String()
	result.Stdout = stdout.String() + outBuffer.String()
	return result
}
