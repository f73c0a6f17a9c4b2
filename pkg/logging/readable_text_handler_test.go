package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadableTextHandler(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(NewReadableTextHandler(&buf, &ReadableTextHandlerOptions{Level: slog.LevelDebug, OmitTime: true}))
	logger = logger.With(slog.String("provider", "netlify"))

	logger.Debug("Checking for deploys", slog.String("site", "monsters"))
	logger.WithGroup("cache").Info("Hit", slog.String("method", "listSites"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(lines, 2)
	assert.Equal("DEBUG|Checking for deploys|provider=netlify, site=monsters", lines[0])
	assert.Equal("INFO |Hit|provider=netlify, cache.method=listSites", lines[1])
}

func TestReadableTextHandlerLevel(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(NewReadableTextHandler(&buf, &ReadableTextHandlerOptions{OmitTime: true}))
	logger.Debug("hidden")
	logger.Warn("shown", slog.Group("site", slog.String("name", "npcs")))

	assert.Equal("WARN |shown|site.name=npcs\n", buf.String())
}

func TestNewLogger(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(buf.String())

	NewLogger(&buf, true).Debug("shown")
	assert.Contains(buf.String(), "|DEBUG|shown")
}
