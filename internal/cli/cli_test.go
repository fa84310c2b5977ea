package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vizpipe/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"charts/bar.hcl"},
			want: &app.Config{SpecPath: "charts/bar.hcl", LogFormat: "console", LogLevel: "info"},
		},
		{
			name: "flag wins over positional",
			args: []string{"-s", "a.hcl", "b.hcl"},
			want: &app.Config{SpecPath: "a.hcl", LogFormat: "console", LogLevel: "info"},
		},
		{
			name: "all flags",
			args: []string{
				"--spec", "charts", "--out", "out.json", "--log-level", "DEBUG",
				"--log-format", "logfmt", "--data-name", "table", "--pretty",
			},
			want: &app.Config{
				SpecPath:  "charts",
				OutPath:   "out.json",
				DataName:  "table",
				Pretty:    true,
				LogFormat: "logfmt",
				LogLevel:  "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_Env(t *testing.T) {
	t.Setenv("VIZPIPE_LOG_FORMAT", "json")
	t.Setenv("VIZPIPE_DATA_NAME", "from_env")

	cfg, _, err := Parse([]string{"chart.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "from_env", cfg.DataName)

	cfg, _, err = Parse([]string{"chart.yaml", "--log-format", "logfmt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "logfmt", cfg.LogFormat)
}

func TestParse_ShouldExit(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(args, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope"}, "unknown flag: --nope"},
		{"too many args", []string{"a", "b"}, "accepts at most 1 arg(s)"},
		{"bad log format", []string{"a", "--log-format", "text"}, "invalid log format"},
		{"bad log level", []string{"a", "--log-level", "trace"}, "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
