package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gridboard/internal/dashboard/model"
)

// MockDashboardRepository is a shared mock implementation of
// repository.DashboardRepository and repository.RevisionRepository for
// testing, mirroring how the mongo repository implements both.
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) LoadDashboard(ctx context.Context, id string) (*model.Dashboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) SaveDashboard(ctx context.Context, d *model.Dashboard) (*model.Dashboard, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		// Echo the input back like an upsert would.
		if d.ID == "" {
			d.ID = "generated-id"
		}
		return d, nil
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) DeleteDashboard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDashboardRepository) ListDashboards(ctx context.Context, filter model.DashboardFilter) ([]*model.DashboardSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DashboardSummary), args.Error(1)
}

func (m *MockDashboardRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDashboardRepository) AppendRevision(ctx context.Context, rev *model.DashboardRevision) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockDashboardRepository) ListRevisions(ctx context.Context, dashboardID string, limit int64) ([]*model.DashboardRevision, error) {
	args := m.Called(ctx, dashboardID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DashboardRevision), args.Error(1)
}

func (m *MockDashboardRepository) EnsureRevisionIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
