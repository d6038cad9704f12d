package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gridboard/internal/dashboard/model"
	"gridboard/internal/dashboard/tags"
)

func seededDirectory() *tags.MemoryDirectory {
	dir := tags.NewMemoryDirectory()
	dir.Register(model.Tag{ID: "plc1.temperature", Name: "Reactor Temperature", ValueKind: model.ValueKindNumeric, Unit: "°C"})
	dir.Register(model.Tag{ID: "plc1.pressure", Name: "Line Pressure", ValueKind: model.ValueKindNumeric, Unit: "bar"})
	return dir
}

func TestListTags(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*model.Tag
	decodeBody(t, rec, &got)
	assert.Len(t, got, 2)
}

func TestGetTag(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc1.temperature", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var tag model.Tag
	decodeBody(t, rec, &tag)
	assert.Equal(t, "Reactor Temperature", tag.Name)
}

func TestGetTagNotFound(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc9.missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body model.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "not_found", body.Error.Code)
}

func TestGetTagHistoryRecorded(t *testing.T) {
	repo := new(MockDashboardRepository)
	dir := seededDirectory()
	now := time.Now()
	for i := 0; i < 5; i++ {
		_ = dir.Record("plc1.temperature", 20.0+float64(i), now.Add(time.Duration(i-5)*time.Minute))
	}
	e := SetupServer(repo, dir)

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc1.temperature/history?range=1h", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var history model.TagHistory
	decodeBody(t, rec, &history)
	assert.Equal(t, "plc1.temperature", history.TagID)
	assert.False(t, history.Fallback)
	assert.Len(t, history.Points, 5)
}

func TestGetTagHistorySinglePoint(t *testing.T) {
	repo := new(MockDashboardRepository)
	dir := seededDirectory()
	now := time.Now()
	_ = dir.Record("plc1.temperature", 20, now.Add(-2*time.Minute))
	_ = dir.Record("plc1.temperature", 21, now.Add(-time.Minute))
	e := SetupServer(repo, dir)

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc1.temperature/history?points=1", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var history model.TagHistory
	decodeBody(t, rec, &history)
	if assert.Len(t, history.Points, 1) {
		assert.Equal(t, 21.0, history.Points[0].Value)
	}
}

func TestGetTagHistoryFallbackFlagged(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	// No samples recorded, so the directory synthesizes a series and
	// marks it as such.
	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc1.pressure/history", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var history model.TagHistory
	decodeBody(t, rec, &history)
	assert.True(t, history.Fallback)
	assert.NotEmpty(t, history.Points)
}

func TestGetTagHistoryInvalidRange(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc1.temperature/history?range=yesterday", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body model.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "bad_request", body.Error.Code)
}

func TestGetTagHistoryUnknownTag(t *testing.T) {
	repo := new(MockDashboardRepository)
	e := SetupServer(repo, seededDirectory())

	rec := PerformRequest(e, http.MethodGet, "/api/v1/tags/plc9.missing/history", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
