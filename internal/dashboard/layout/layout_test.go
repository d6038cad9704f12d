package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridboard/internal/dashboard/model"
)

func placed(id string, x, y, w, h int) model.Widget {
	return model.Widget{
		ID:      id,
		Type:    model.WidgetNumeric,
		GridPos: model.GridPos{X: x, Y: y, W: w, H: h},
	}
}

func TestAppendBelow(t *testing.T) {
	// Rows of height 4 and 2 both starting at y=0: next widget lands
	// one row beneath the deeper one.
	widgets := []model.Widget{
		placed("w1", 0, 0, 6, 4),
		placed("w2", 6, 0, 6, 2),
	}

	pos := AppendBelow(widgets)
	assert.Equal(t, 0, pos.X)
	assert.Equal(t, 5, pos.Y)
}

func TestAppendBelowStrictlyBeneath(t *testing.T) {
	widgets := []model.Widget{
		placed("w1", 0, 0, 2, 2),
		placed("w2", 4, 7, 3, 3),
		placed("w3", 2, 3, 2, 2),
	}

	pos := AppendBelow(widgets)
	assert.Equal(t, 0, pos.X)
	for _, w := range widgets {
		assert.Greater(t, pos.Y, w.GridPos.Y+w.GridPos.H-1)
	}
	assert.Equal(t, 11, pos.Y)
}

func TestAppendBelowEmpty(t *testing.T) {
	pos := AppendBelow(nil)
	assert.Equal(t, 0, pos.X)
	assert.Equal(t, 1, pos.Y)
}

func TestApplyPatch(t *testing.T) {
	widgets := []model.Widget{
		placed("w1", 0, 0, 2, 2),
		placed("w2", 2, 0, 2, 2),
	}
	patch := []model.LayoutItem{
		{I: "w1", X: 4, Y: 6, W: 3, H: 3},
	}

	Apply(widgets, patch)

	assert.Equal(t, model.GridPos{X: 4, Y: 6, W: 3, H: 3}, widgets[0].GridPos)
	// Untouched widget keeps its placement.
	assert.Equal(t, model.GridPos{X: 2, Y: 0, W: 2, H: 2}, widgets[1].GridPos)
}

func TestApplyIdempotent(t *testing.T) {
	widgets := []model.Widget{
		placed("w1", 0, 0, 2, 2),
		placed("w2", 2, 0, 2, 2),
	}
	patch := []model.LayoutItem{
		{I: "w1", X: 1, Y: 1, W: 4, H: 2},
		{I: "w2", X: 0, Y: 3, W: 2, H: 2},
	}

	Apply(widgets, patch)
	once := make([]model.Widget, len(widgets))
	copy(once, widgets)

	Apply(widgets, patch)
	assert.Equal(t, once, widgets)
}

func TestApplyUnknownIDTolerated(t *testing.T) {
	widgets := []model.Widget{
		placed("w1", 0, 0, 2, 2),
	}
	patch := []model.LayoutItem{
		{I: "ghost", X: 9, Y: 9, W: 1, H: 1},
	}

	Apply(widgets, patch)
	assert.Equal(t, model.GridPos{X: 0, Y: 0, W: 2, H: 2}, widgets[0].GridPos)
}

func TestCollisions(t *testing.T) {
	widgets := []model.Widget{
		placed("w1", 0, 0, 4, 4),
		placed("w2", 2, 2, 4, 4), // overlaps w1
		placed("w3", 8, 0, 2, 2), // clear
	}

	collisions := Collisions(widgets)
	if assert.Len(t, collisions, 1) {
		assert.Equal(t, "w1", collisions[0].A)
		assert.Equal(t, "w2", collisions[0].B)
	}
}

func TestCollisionsSkipStatic(t *testing.T) {
	w1 := placed("w1", 0, 0, 4, 4)
	w1.GridPos.Static = true
	widgets := []model.Widget{w1, placed("w2", 0, 0, 4, 4)}

	assert.Empty(t, Collisions(widgets))
}

func TestCollisionsEdgeAdjacent(t *testing.T) {
	// Sharing an edge is not an overlap.
	widgets := []model.Widget{
		placed("w1", 0, 0, 2, 2),
		placed("w2", 2, 0, 2, 2),
		placed("w3", 0, 2, 2, 2),
	}
	assert.Empty(t, Collisions(widgets))
}

func TestClampToColumns(t *testing.T) {
	pos := model.GridPos{X: 10, Y: 0, W: 6, H: 2}
	clamped := ClampToColumns(pos, 12)
	assert.Equal(t, 6, clamped.X)
	assert.Equal(t, 6, clamped.W)

	wide := model.GridPos{X: 0, Y: 0, W: 20, H: 2}
	clamped = ClampToColumns(wide, 12)
	assert.Equal(t, 0, clamped.X)
	assert.Equal(t, 12, clamped.W)
}
