package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
)

func TestDate_ParseYMarshal(t *testing.T) {
	d, err := dto.ParseDate("2026-06-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 30, d.Day())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-06-30"`, string(raw))
}

func TestDate_ParseInvalida(t *testing.T) {
	for _, bad := range []string{"30-06-2026", "2026/06/30", "mañana"} {
		_, err := dto.ParseDate(bad)
		assert.Error(t, err, "fecha %q debe rechazarse", bad)
	}
}

func TestDate_UnmarshalAceptaFechaYTimestamp(t *testing.T) {
	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-06-30"`), &d))
	assert.Equal(t, 30, d.Day())

	// También acepta RFC3339 (algunos clientes envían el timestamp completo)
	require.NoError(t, json.Unmarshal([]byte(`"2026-06-30T15:04:05Z"`), &d))
	assert.Equal(t, 30, d.Day())

	assert.Error(t, json.Unmarshal([]byte(`"no-es-fecha"`), &d))
}
