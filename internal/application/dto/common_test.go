package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/healthflow-api/internal/application/dto"
)

func TestDate_SerializaSoloFecha(t *testing.T) {
	d := dto.NewDate(time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(b))
}

func TestDate_SerializaCeroComoNull(t *testing.T) {
	b, err := json.Marshal(dto.Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDate_AceptaFechaYTimestamp(t *testing.T) {
	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"1985-03-14"`), &d))
	assert.Equal(t, 1985, d.Year())

	require.NoError(t, json.Unmarshal([]byte(`"2026-08-29T10:30:00Z"`), &d))
	assert.Equal(t, time.August, d.Month())

	assert.Error(t, json.Unmarshal([]byte(`"29/08/2026"`), &d))
}

func TestPageRequest_ValoresPorDefecto(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 500, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit, "el límite se acota a 100")
	assert.Equal(t, 0, p.Offset)
}
