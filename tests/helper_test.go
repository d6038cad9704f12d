package tests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"gridboard/internal/dashboard/handler"
	"gridboard/internal/dashboard/model"
	"gridboard/internal/dashboard/router"
	"gridboard/internal/dashboard/service"
	"gridboard/internal/dashboard/tags"
)

// SetupServer wires a full echo server against the mocked repository
// and a real in-memory tag directory.
func SetupServer(repo *MockDashboardRepository, dir *tags.MemoryDirectory) *echo.Echo {
	if dir == nil {
		dir = tags.NewMemoryDirectory()
	}
	svc := service.NewService(repo, repo, dir, model.DefaultGridColumns)
	h := handler.NewDashboardHandler(svc)

	e := echo.New()
	router.RegisterRoutes(e, h)
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func asUser(userID string) map[string]string {
	return map[string]string{"x-user-id": userID}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

// ownedDashboard is a minimal dashboard owned by user1 for mock setups.
func ownedDashboard(id string, widgets ...model.Widget) *model.Dashboard {
	if widgets == nil {
		widgets = []model.Widget{}
	}
	return &model.Dashboard{
		ID:      id,
		Name:    "Plant Overview",
		Owner:   "user1",
		Widgets: widgets,
	}
}

func expectPersist(repo *MockDashboardRepository) {
	repo.On("SaveDashboard", mock.Anything, mock.AnythingOfType("*model.Dashboard")).Return(nil, nil)
	repo.On("AppendRevision", mock.Anything, mock.AnythingOfType("*model.DashboardRevision")).Return(nil)
}
