package framework

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerKeepsMessagesInOrder(t *testing.T) {
	var l CapturingLogger
	l.Printf("first %d", 1)
	l.Printf("second %d", 2)

	out := l.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "first 1", out[0].Message)
	assert.Equal(t, "second 2", out[1].Message)
	assert.False(t, out[1].Time.Before(out[0].Time))
}

func TestCapturedOutputDumpUsesPrefix(t *testing.T) {
	var l CapturingLogger
	l.Printf("hello")

	var buf bytes.Buffer
	l.Output().Dump(&buf, "  DEBUG ")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "  DEBUG ["))
	assert.True(t, strings.HasSuffix(lines[0], "] hello"))
}

func TestNullLoggerDiscardsOutput(t *testing.T) {
	// must simply not panic
	NullLogger().Printf("ignored %s", "value")
}
