// Package layout implements the grid placement rules: where a new
// widget lands, how render-layer drag/resize patches are merged back
// into the model, and overlap detection.
package layout

import "gridboard/internal/dashboard/model"

// Position is a grid coordinate for a newly placed widget.
type Position struct {
	X int
	Y int
}

// AppendBelow returns the placement for a widget appended to an
// existing collection: column zero, one row beneath the lowest edge of
// all current widgets. No bin-packing into horizontal gaps; vertical
// stacking keeps placement predictable.
func AppendBelow(widgets []model.Widget) Position {
	maxY := 0
	for i := range widgets {
		if bottom := widgets[i].GridPos.Y + widgets[i].GridPos.H; bottom > maxY {
			maxY = bottom
		}
	}
	return Position{X: 0, Y: maxY + 1}
}

// Apply merges a render-layer layout patch into the widget collection.
// Widgets with no matching patch entry are left unchanged, and patch
// entries referencing unknown widget ids are silently ignored: the
// render layer is the source of truth for what currently exists
// visually. Applying the same patch twice yields the same result.
func Apply(widgets []model.Widget, patch []model.LayoutItem) {
	if len(patch) == 0 {
		return
	}

	byID := make(map[string]*model.LayoutItem, len(patch))
	for i := range patch {
		byID[patch[i].I] = &patch[i]
	}

	for i := range widgets {
		item, ok := byID[widgets[i].ID]
		if !ok {
			continue
		}
		widgets[i].GridPos.X = item.X
		widgets[i].GridPos.Y = item.Y
		widgets[i].GridPos.W = item.W
		widgets[i].GridPos.H = item.H
	}
}

// Collision is a pair of widget ids occupying overlapping grid cells.
type Collision struct {
	A string
	B string
}

// Collisions reports every pair of non-static widgets whose grid
// rectangles overlap. The model tolerates overlap (the render layer
// owns packing); callers use this to warn, not to reject.
func Collisions(widgets []model.Widget) []Collision {
	var out []Collision
	for i := range widgets {
		if widgets[i].GridPos.Static {
			continue
		}
		for j := i + 1; j < len(widgets); j++ {
			if widgets[j].GridPos.Static {
				continue
			}
			if overlaps(widgets[i].GridPos, widgets[j].GridPos) {
				out = append(out, Collision{A: widgets[i].ID, B: widgets[j].ID})
			}
		}
	}
	return out
}

func overlaps(a, b model.GridPos) bool {
	if a.X+a.W <= b.X || b.X+b.W <= a.X {
		return false
	}
	if a.Y+a.H <= b.Y || b.Y+b.H <= a.Y {
		return false
	}
	return true
}

// ClampToColumns shrinks and shifts a position so it fits within the
// grid's column count. Widgets wider than the grid are clamped to full
// width.
func ClampToColumns(pos model.GridPos, columns int) model.GridPos {
	if columns < 1 {
		columns = model.DefaultGridColumns
	}
	if pos.W > columns {
		pos.W = columns
	}
	if pos.X+pos.W > columns {
		pos.X = columns - pos.W
	}
	if pos.X < 0 {
		pos.X = 0
	}
	return pos
}
