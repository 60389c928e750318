package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel, false)

	l.Debug("oculto %d", 1)
	assert.Empty(t, buf.String())

	l.Info("reserva %d extendida", 7)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "reserva 7 extendida")
	assert.Contains(t, buf.String(), `"service":"reservas"`)
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DebugLevel, false).With("job", "auto-extend")

	l.Error("fallo")
	assert.Contains(t, buf.String(), `"job":"auto-extend"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}
