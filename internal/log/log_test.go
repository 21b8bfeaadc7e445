package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilteringHandlerSections(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	logger := slog.New(&filteringHandler{underlying: slog.NewTextHandler(buf, opts)})

	t.Cleanup(func() { EnableSections() })
	EnableSections("compose")

	logger.With("section", "compose.net").Debug("visible by prefix")
	logger.With("section", "reduce").Debug("hidden")
	logger.Info("visible from record", "section", "compose")
	logger.With("section", "reduce").Warn("always visible")

	out := buf.String()
	assert.Contains(t, out, "visible by prefix")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible from record")
	assert.Contains(t, out, "always visible")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })
	SetLevel(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, DefaultLogger.Enabled(t.Context(), slog.LevelError))
}
