package service

import (
	"context"
	"errors"

	"gridboard/internal/dashboard/layout"
	"gridboard/internal/dashboard/model"
	"gridboard/internal/dashboard/repository"
	"gridboard/internal/dashboard/tags"
	"gridboard/internal/dashboard/util"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)

// DashboardService is the single mutation path over dashboards: load,
// apply the pure model transformation, persist. There is exactly one
// logical writer per dashboard, so no locking happens at this layer.
type DashboardService interface {
	CreateDashboard(ctx context.Context, callerID string, req model.CreateDashboardReq) (*model.Dashboard, error)
	GetDashboard(ctx context.Context, callerID, id string) (*model.Dashboard, error)
	UpdateDashboard(ctx context.Context, callerID, id string, req model.UpdateDashboardReq) (*model.Dashboard, error)
	DeleteDashboard(ctx context.Context, callerID, id string) error
	ListDashboards(ctx context.Context, callerID string, req model.ListDashboardsReq) ([]*model.DashboardSummary, error)
	ListRevisions(ctx context.Context, callerID, id string, limit int64) ([]*model.DashboardRevision, error)

	AddWidget(ctx context.Context, callerID, dashboardID string, req model.AddWidgetReq) (*model.Widget, error)
	UpdateWidget(ctx context.Context, callerID, dashboardID, widgetID string, req model.UpdateWidgetReq) (*model.Widget, error)
	RemoveWidget(ctx context.Context, callerID, dashboardID, widgetID string) error
	UpdateLayout(ctx context.Context, callerID, dashboardID string, req model.UpdateLayoutReq) (*model.Dashboard, error)

	GetTag(ctx context.Context, id string) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetTagHistory(ctx context.Context, req model.TagHistoryReq) (*model.TagHistory, error)
}

type Service struct {
	Repo        repository.DashboardRepository
	Revisions   repository.RevisionRepository
	Tags        tags.Directory
	GridColumns int
}

func NewService(repo repository.DashboardRepository, revs repository.RevisionRepository, dir tags.Directory, gridColumns int) *Service {
	if gridColumns < 1 {
		gridColumns = model.DefaultGridColumns
	}
	return &Service{Repo: repo, Revisions: revs, Tags: dir, GridColumns: gridColumns}
}

func (s *Service) CreateDashboard(ctx context.Context, callerID string, req model.CreateDashboardReq) (*model.Dashboard, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	d := &model.Dashboard{
		Name:        req.Name,
		Description: req.Description,
		Owner:       callerID,
		IsPublic:    req.IsPublic,
		Widgets:     []model.Widget{},
	}
	return s.persist(ctx, callerID, d)
}

func (s *Service) GetDashboard(ctx context.Context, callerID, id string) (*model.Dashboard, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.IsPublic && d.Owner != callerID {
		return nil, ErrForbidden
	}
	return d, nil
}

func (s *Service) UpdateDashboard(ctx context.Context, callerID, id string, req model.UpdateDashboardReq) (*model.Dashboard, error) {
	d, err := s.loadOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.IsPublic != nil {
		d.IsPublic = *req.IsPublic
	}
	return s.persist(ctx, callerID, d)
}

func (s *Service) DeleteDashboard(ctx context.Context, callerID, id string) error {
	if _, err := s.loadOwned(ctx, callerID, id); err != nil {
		return err
	}
	if err := s.Repo.DeleteDashboard(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	util.GetLogger().Info("dashboard deleted", "dashboard_id", id, "caller", callerID)
	return nil
}

func (s *Service) ListDashboards(ctx context.Context, callerID string, req model.ListDashboardsReq) ([]*model.DashboardSummary, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	return s.Repo.ListDashboards(ctx, req.Filter())
}

func (s *Service) ListRevisions(ctx context.Context, callerID, id string, limit int64) ([]*model.DashboardRevision, error) {
	if _, err := s.GetDashboard(ctx, callerID, id); err != nil {
		return nil, err
	}
	return s.Revisions.ListRevisions(ctx, id, limit)
}

func (s *Service) load(ctx context.Context, id string) (*model.Dashboard, error) {
	d, err := s.Repo.LoadDashboard(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) loadOwned(ctx context.Context, callerID, id string) (*model.Dashboard, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Owner != callerID {
		return nil, ErrForbidden
	}
	return d, nil
}

// persist saves the dashboard, appends a revision record and warns on
// overlapping placement. Overlap is tolerated (the render layer owns
// packing) but worth surfacing in the logs.
func (s *Service) persist(ctx context.Context, callerID string, d *model.Dashboard) (*model.Dashboard, error) {
	if collisions := layout.Collisions(d.Widgets); len(collisions) > 0 {
		util.GetLogger().Warn("dashboard has overlapping widgets",
			"dashboard_id", d.ID,
			"collisions", len(collisions),
		)
	}

	saved, err := s.Repo.SaveDashboard(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	rev := &model.DashboardRevision{
		DashboardID: saved.ID,
		SavedBy:     callerID,
		WidgetCount: len(saved.Widgets),
	}
	if err := s.Revisions.AppendRevision(ctx, rev); err != nil {
		// The save itself succeeded; a missing revision record is not
		// worth failing the request over.
		util.GetLogger().Warn("failed to append dashboard revision",
			"dashboard_id", saved.ID, "error", err)
	}

	return saved, nil
}

// mergeWidgetDraft copies the request fields onto a freshly seeded
// draft, keeping the draft's defaults where the request is silent.
func mergeWidgetDraft(draft *model.Widget, req model.AddWidgetReq) {
	draft.Title = req.Title
	if req.TagID != "" {
		draft.TagID = req.TagID
	}
	if len(req.TagIDs) > 0 {
		draft.TagIDs = req.TagIDs
	}
	if req.RefreshRate > 0 {
		draft.RefreshRate = req.RefreshRate
	}
	mergeConfig(&draft.Config, req.Config)
}

func mergeConfig(dst *model.WidgetConfig, src model.WidgetConfig) {
	if src.ChartType != "" {
		dst.ChartType = src.ChartType
	}
	if src.TimeRange != "" {
		dst.TimeRange = src.TimeRange
	}
	if src.ShowLegend != nil {
		dst.ShowLegend = src.ShowLegend
	}
	if src.ShowPoints != nil {
		dst.ShowPoints = src.ShowPoints
	}
	if src.MinValue != nil {
		dst.MinValue = src.MinValue
	}
	if src.MaxValue != nil {
		dst.MaxValue = src.MaxValue
	}
	if src.Orientation != "" {
		dst.Orientation = src.Orientation
	}
	if len(src.Thresholds) > 0 {
		dst.Thresholds = src.Thresholds
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.Decimals != nil {
		dst.Decimals = src.Decimals
	}
	if src.Sparkline != nil {
		dst.Sparkline = src.Sparkline
	}
	if len(src.StatusMap) > 0 {
		dst.StatusMap = src.StatusMap
	}
	if len(src.Columns) > 0 {
		dst.Columns = src.Columns
	}
	if src.Severity != "" {
		dst.Severity = src.Severity
	}
	if src.MaxItems > 0 {
		dst.MaxItems = src.MaxItems
	}
	if src.Buckets > 0 {
		dst.Buckets = src.Buckets
	}
	if src.ColorScheme != "" {
		dst.ColorScheme = src.ColorScheme
	}
}
