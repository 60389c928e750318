package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "confirmada", NormalizeText("  CONFIRMADA "))
	assert.Equal(t, "reunion", NormalizeText("Reunión"))
	assert.Equal(t, "CANCELADA", UpperASCII("cancelada"))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2025-03-10T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)))

	got, err = ParseDateTime("2025-03-10T10:00")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseDateTime("10/03/2025")
	assert.Error(t, err)

	_, err = ParseDateTime("")
	assert.Error(t, err)
}

func TestWebhookTimestamp(t *testing.T) {
	loc := time.FixedZone("CLT", -3*3600)
	ts := time.Date(2025, 3, 10, 9, 5, 0, 0, loc)
	assert.Equal(t, "2025-03-10 09:05:00-03:00", WebhookTimestamp(ts))
}
