package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/UnsavedDragon/RedBlackTree/logger"
	"github.com/stretchr/testify/assert"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetColor(false)
	l.SetLevel("warn")

	l.Info("hidden")
	l.Warnf("count=%d", 3)
	l.Error("boom")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[W] count=3")
	assert.Contains(t, lines[1], "[E] boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	assert.Equal(t, logger.OFF, logger.ParseLevel("off"))
	assert.Equal(t, logger.WARN, logger.ParseLevel(logger.WARN))
	assert.Equal(t, logger.UNKNOWN, logger.ParseLevel("loud"))
}

func TestOffSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetLevel("off")
	l.Fatal("nope")
	assert.Empty(t, buf.String())
}
