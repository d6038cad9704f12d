package service

import (
	"context"

	"gridboard/internal/dashboard/layout"
	"gridboard/internal/dashboard/model"
	"gridboard/internal/dashboard/util"
	"gridboard/internal/dashboard/widget"
)

// AddWidget runs the two-phase creation flow: seed a draft from the
// type's defaults, populate it from the request, validate, place it
// beneath the existing content and persist.
func (s *Service) AddWidget(ctx context.Context, callerID, dashboardID string, req model.AddWidgetReq) (*model.Widget, error) {
	d, err := s.loadOwned(ctx, callerID, dashboardID)
	if err != nil {
		return nil, err
	}

	draft, err := widget.NewDraft(model.WidgetType(req.Type))
	if err != nil {
		return nil, err
	}
	mergeWidgetDraft(&draft, req)

	if err := widget.Validate(draft); err != nil {
		return nil, err
	}

	pos := layout.AppendBelow(d.Widgets)
	draft.GridPos.X = pos.X
	draft.GridPos.Y = pos.Y
	draft.GridPos = layout.ClampToColumns(draft.GridPos, s.GridColumns)

	if err := d.AddWidget(draft); err != nil {
		return nil, ErrConflict
	}

	if _, err := s.persist(ctx, callerID, d); err != nil {
		return nil, err
	}

	util.GetLogger().Info("widget added",
		"dashboard_id", dashboardID,
		"widget_id", draft.ID,
		"type", draft.Type,
	)
	return &draft, nil
}

func (s *Service) UpdateWidget(ctx context.Context, callerID, dashboardID, widgetID string, req model.UpdateWidgetReq) (*model.Widget, error) {
	d, err := s.loadOwned(ctx, callerID, dashboardID)
	if err != nil {
		return nil, err
	}

	if err := d.UpdateWidget(widgetID, req.Patch()); err != nil {
		return nil, ErrNotFound
	}

	updated := d.Widget(widgetID)
	if err := widget.Validate(*updated); err != nil {
		return nil, err
	}

	if _, err := s.persist(ctx, callerID, d); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) RemoveWidget(ctx context.Context, callerID, dashboardID, widgetID string) error {
	d, err := s.loadOwned(ctx, callerID, dashboardID)
	if err != nil {
		return err
	}

	if !d.RemoveWidget(widgetID) {
		return ErrNotFound
	}

	if _, err := s.persist(ctx, callerID, d); err != nil {
		return err
	}

	util.GetLogger().Info("widget removed",
		"dashboard_id", dashboardID,
		"widget_id", widgetID,
	)
	return nil
}

// UpdateLayout merges a render-layer layout patch. Entries referencing
// unknown widget ids are ignored, per the tolerant-merge contract.
func (s *Service) UpdateLayout(ctx context.Context, callerID, dashboardID string, req model.UpdateLayoutReq) (*model.Dashboard, error) {
	d, err := s.loadOwned(ctx, callerID, dashboardID)
	if err != nil {
		return nil, err
	}

	layout.Apply(d.Widgets, req.Layout)

	return s.persist(ctx, callerID, d)
}
