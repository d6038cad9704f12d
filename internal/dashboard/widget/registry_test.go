package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridboard/internal/dashboard/model"
)

func TestNewDraftDefaults(t *testing.T) {
	cases := []struct {
		typ  model.WidgetType
		w, h int
	}{
		{model.WidgetChart, 6, 4},
		{model.WidgetGauge, 3, 3},
		{model.WidgetNumeric, 2, 2},
		{model.WidgetStatus, 2, 2},
		{model.WidgetTable, 6, 5},
		{model.WidgetAlert, 6, 4},
		{model.WidgetAdvancedGauge, 3, 3},
		{model.WidgetAdvancedChart, 8, 4},
	}

	for _, tc := range cases {
		draft, err := NewDraft(tc.typ)
		assert.NoError(t, err, "type %s", tc.typ)
		assert.NotEmpty(t, draft.ID)
		assert.Equal(t, tc.typ, draft.Type)
		assert.Equal(t, tc.w, draft.GridPos.W, "type %s", tc.typ)
		assert.Equal(t, tc.h, draft.GridPos.H, "type %s", tc.typ)
		assert.Equal(t, 2, draft.GridPos.MinW)
		assert.Equal(t, 2, draft.GridPos.MinH)
		assert.True(t, draft.GridPos.IsDraggable)
		assert.True(t, draft.GridPos.IsResizable)
		assert.False(t, draft.GridPos.Static)
	}
}

func TestNewDraftUniqueIDs(t *testing.T) {
	a, _ := NewDraft(model.WidgetChart)
	b, _ := NewDraft(model.WidgetChart)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewDraftPayloads(t *testing.T) {
	chart, _ := NewDraft(model.WidgetChart)
	assert.Equal(t, model.ChartTypeLine, chart.Config.ChartType)
	assert.Equal(t, "1h", chart.Config.TimeRange)

	gauge, _ := NewDraft(model.WidgetGauge)
	if assert.NotNil(t, gauge.Config.MinValue) {
		assert.Equal(t, float64(0), *gauge.Config.MinValue)
	}
	if assert.NotNil(t, gauge.Config.MaxValue) {
		assert.Equal(t, float64(100), *gauge.Config.MaxValue)
	}

	status, _ := NewDraft(model.WidgetStatus)
	assert.NotNil(t, status.Config.StatusMap)
	assert.Empty(t, status.Config.StatusMap)
}

func TestNewDraftUnknownType(t *testing.T) {
	_, err := NewDraft("hologram")
	assert.ErrorIs(t, err, ErrUnknownWidgetType)
}

func TestDefinitionsCoverEveryType(t *testing.T) {
	defs := Definitions()
	assert.Len(t, defs, len(model.AllWidgetTypes))
	for _, d := range defs {
		assert.True(t, model.AllWidgetTypes[d.Type], "definition for unregistered type %s", d.Type)
	}
}

func TestEffectiveRefresh(t *testing.T) {
	tag := &model.Tag{ID: "t1", RefreshInterval: 30}

	w := model.Widget{RefreshRate: 5}
	assert.Equal(t, 5, EffectiveRefresh(w, tag))

	w.RefreshRate = 0
	assert.Equal(t, 30, EffectiveRefresh(w, tag))
	assert.Equal(t, 0, EffectiveRefresh(w, nil))
}
