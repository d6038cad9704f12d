package tags

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gridboard/internal/dashboard/model"
)

func numericTag(id string) model.Tag {
	lo, hi := 0.0, 100.0
	return model.Tag{
		ID:              id,
		Name:            "Tag " + id,
		ValueKind:       model.ValueKindNumeric,
		Min:             &lo,
		Max:             &hi,
		RefreshInterval: 10,
	}
}

func TestGetTag(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	tag, err := d.GetTag(context.Background(), "plc1.temp")
	assert.NoError(t, err)
	assert.Equal(t, "plc1.temp", tag.ID)
	assert.Equal(t, model.TagStatusActive, tag.Status)

	_, err = d.GetTag(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestRecordUpdatesLastValue(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	now := time.Now()
	assert.NoError(t, d.Record("plc1.temp", 42.5, now))

	tag, _ := d.GetTag(context.Background(), "plc1.temp")
	assert.Equal(t, 42.5, tag.LastValue)
	if assert.NotNil(t, tag.LastUpdated) {
		assert.WithinDuration(t, now, *tag.LastUpdated, time.Second)
	}

	assert.ErrorIs(t, d.Record("ghost", 1, now), ErrTagNotFound)
}

func TestGetTagHistoryRecorded(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	now := time.Now()
	for i := 0; i < 10; i++ {
		_ = d.Record("plc1.temp", float64(i), now.Add(-time.Duration(10-i)*time.Minute))
	}

	history, err := d.GetTagHistory(context.Background(), "plc1.temp", time.Hour, 100)
	assert.NoError(t, err)
	assert.False(t, history.Fallback)
	assert.Len(t, history.Points, 10)
	assert.Equal(t, float64(9), history.Points[len(history.Points)-1].Value)
}

func TestGetTagHistoryFallback(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	history, err := d.GetTagHistory(context.Background(), "plc1.temp", time.Hour, 50)
	assert.NoError(t, err)
	assert.True(t, history.Fallback, "unrecorded tag must be flagged as synthesized")
	assert.Len(t, history.Points, 50)
	for _, p := range history.Points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 100.0)
	}
}

func TestGetTagHistoryDownsamples(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	now := time.Now()
	for i := 0; i < 500; i++ {
		_ = d.Record("plc1.temp", float64(i), now.Add(-time.Duration(500-i)*time.Second))
	}

	history, err := d.GetTagHistory(context.Background(), "plc1.temp", time.Hour, 100)
	assert.NoError(t, err)
	assert.False(t, history.Fallback)
	assert.Len(t, history.Points, 100)
	// The newest sample always survives downsampling.
	assert.Equal(t, float64(499), history.Points[len(history.Points)-1].Value)
}

func TestGetTagHistorySinglePoint(t *testing.T) {
	d := NewMemoryDirectory()
	d.Register(numericTag("plc1.temp"))

	now := time.Now()
	_ = d.Record("plc1.temp", 10, now.Add(-2*time.Minute))
	_ = d.Record("plc1.temp", 20, now.Add(-time.Minute))

	history, err := d.GetTagHistory(context.Background(), "plc1.temp", time.Hour, 1)
	assert.NoError(t, err)
	assert.False(t, history.Fallback)
	if assert.Len(t, history.Points, 1) {
		assert.Equal(t, float64(20), history.Points[0].Value)
	}
}

func TestGetTagHistoryUnknownTag(t *testing.T) {
	d := NewMemoryDirectory()
	_, err := d.GetTagHistory(context.Background(), "ghost", time.Hour, 10)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestLoadSeed(t *testing.T) {
	seed := `tags:
  - id: plc1.temp
    name: Reactor Temperature
    valueKind: numeric
    unit: "°C"
    min: 0
    max: 400
    refreshInterval: 5
  - id: plc1.pump
    name: Pump Running
    valueKind: boolean
`
	path := filepath.Join(t.TempDir(), "tags.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	d := NewMemoryDirectory()
	n, err := LoadSeed(d, path)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	tag, err := d.GetTag(context.Background(), "plc1.temp")
	assert.NoError(t, err)
	assert.Equal(t, "Reactor Temperature", tag.Name)
	assert.Equal(t, "°C", tag.Unit)
	assert.Equal(t, 5, tag.RefreshInterval)

	pump, err := d.GetTag(context.Background(), "plc1.pump")
	assert.NoError(t, err)
	// Defaults applied for omitted fields.
	assert.Equal(t, 30, pump.RefreshInterval)
}

func TestLoadSeedMissingFile(t *testing.T) {
	d := NewMemoryDirectory()
	n, err := LoadSeed(d, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadSeedRejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("tags:\n  - name: nameless\n"), 0o644))

	d := NewMemoryDirectory()
	_, err := LoadSeed(d, path)
	assert.Error(t, err)
}
