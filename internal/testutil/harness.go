// Package testutil provides a harness for end-to-end tests that compile
// chart files through the full application.
package testutil

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/vizpipe/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// Decode unmarshals the run's JSON output into v.
func (r *HarnessResult) Decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, r.Err)
	require.NoError(t, json.Unmarshal([]byte(r.Output), v))
}

// RunIntegrationTest writes files into a fresh directory and compiles them
// with a default background context. With a single file the app compiles
// that file; otherwise it compiles the whole directory.
func RunIntegrationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	require.NotEmpty(t, files, "the harness needs at least one chart file")

	tmpDir := t.TempDir()
	specPath := tmpDir
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
		if len(files) == 1 {
			specPath = filePath
		}
	}

	appConfig, err := app.NewConfig(app.Config{SpecPath: specPath, LogLevel: "debug", LogFormat: "logfmt"})
	require.NoError(t, err)

	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	runErr := app.NewApp(outBuffer, logBuffer, appConfig).Run(ctx)

	if os.Getenv("VIZPIPE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
