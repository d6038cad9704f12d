package repository

import (
	"context"
	"errors"

	"gridboard/internal/dashboard/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
)

// DashboardRepository is the dashboard store boundary. Save is an
// upsert: a dashboard without an id gets one assigned.
type DashboardRepository interface {
	LoadDashboard(ctx context.Context, id string) (*model.Dashboard, error)
	SaveDashboard(ctx context.Context, d *model.Dashboard) (*model.Dashboard, error)
	DeleteDashboard(ctx context.Context, id string) error
	ListDashboards(ctx context.Context, filter model.DashboardFilter) ([]*model.DashboardSummary, error)
	EnsureIndexes(ctx context.Context) error
}

// RevisionRepository records append-only save history per dashboard.
type RevisionRepository interface {
	AppendRevision(ctx context.Context, rev *model.DashboardRevision) error
	ListRevisions(ctx context.Context, dashboardID string, limit int64) ([]*model.DashboardRevision, error)
	EnsureRevisionIndexes(ctx context.Context) error
}
