package applog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_AlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, prefix: "run-1"}

	l.Info("hello %s", "world")

	assert.Contains(t, buf.String(), "run-1")
	assert.Contains(t, buf.String(), "hello world")
}

func TestDebug_SuppressedUnlessEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf}

	l.Debug("should not appear")
	assert.Empty(t, buf.String())

	l.enabled = true
	l.Debug("should appear")
	assert.Contains(t, buf.String(), "should appear")
}
