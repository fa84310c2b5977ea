package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"msg":"hello"`, `"chart":"bar"`}},
		{"logfmt", []string{"msg=hello", "chart=bar"}},
		{"console", []string{"hello", `{"chart": "bar"}`}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			newLogger("info", tc.format, &buf).Info("hello", zap.String("chart", "bar"))
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")

	buf.Reset()
	newLogger("bogus", "json", &buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
