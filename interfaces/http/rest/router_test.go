package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"survey-backend/application/services"
	"survey-backend/infrastructure/persistence"
	"survey-backend/infrastructure/persistence/storage"
	"survey-backend/interfaces/graphql"
	"survey-backend/interfaces/http/rest"
	"survey-backend/pkg/observability"
	"survey-backend/pkg/ratelimit"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

type testServer struct {
	router    *chi.Mux
	collector *observability.Collector
}

func newTestServer(t *testing.T, conn *storage.Connection, limiter ratelimit.Limiter) *testServer {
	t.Helper()
	logger := zap.NewNop()
	stores := persistence.NewStores(conn, persistence.Settings{Clock: fixedClock}, nil, nil, logger)
	svc := services.New(stores, services.Options{Clock: fixedClock}, logger)
	gqlHandler, err := graphql.NewHandler(svc, logger)
	require.NoError(t, err)

	collector := observability.NewCollector("test")
	router := rest.NewRouter(svc, conn, collector, nil, rest.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		GraphQL:        gqlHandler,
		RateLimiter:    limiter,
	}, logger)
	return &testServer{router: router.Setup(), collector: collector}
}

func newMemoryServer(t *testing.T) *testServer {
	return newTestServer(t, storage.NewMemoryConnection(zap.NewNop()), nil)
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_Health(t *testing.T) {
	srv := newMemoryServer(t)

	root := srv.do(t, http.MethodGet, "/", nil)
	health := srv.do(t, http.MethodGet, "/health", nil)
	ready := srv.do(t, http.MethodGet, "/ready", nil)

	assert.Equal(t, http.StatusOK, root.Code)
	assert.Equal(t, "Survey Management API", decodeBody(t, root)["message"])
	assert.Equal(t, "healthy", decodeBody(t, health)["status"])
	assert.Equal(t, "ready", decodeBody(t, ready)["status"])
}

func TestRouter_CustomerLifecycle(t *testing.T) {
	// Arrange
	srv := newMemoryServer(t)

	// Act: create
	created := srv.do(t, http.MethodPost, "/customers/", map[string]interface{}{
		"CustomerCode": "ACME001",
		"CompanyName":  "ACME Development Corporation",
		"Email":        "j.smith@acmedev.com",
	})

	// Assert
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	customer := decodeBody(t, created)
	id, _ := customer["CustomerId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, customer["IsActive"])

	// Act: read, update, delete
	got := srv.do(t, http.MethodGet, "/customers/"+id, nil)
	updated := srv.do(t, http.MethodPut, "/customers/"+id, map[string]interface{}{"Phone": "555-0101"})
	deleted := srv.do(t, http.MethodDelete, "/customers/"+id, nil)
	missing := srv.do(t, http.MethodDelete, "/customers/unknown", nil)

	// Assert
	assert.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "ACME Development Corporation", decodeBody(t, got)["CompanyName"])
	assert.Equal(t, "555-0101", decodeBody(t, updated)["Phone"])
	assert.Equal(t, "Customer deleted successfully", decodeBody(t, deleted)["message"])
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestRouter_ListHeaders(t *testing.T) {
	// Arrange
	srv := newMemoryServer(t)
	for i := 0; i < 5; i++ {
		rec := srv.do(t, http.MethodPost, "/townships/", map[string]interface{}{
			"TownshipName": fmt.Sprintf("Town %d", i),
			"County":       "Suffolk",
			"State":        "NY",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// Act
	rec := srv.do(t, http.MethodGet, "/townships/?skip=2&limit=2", nil)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "3", rec.Header().Get("X-Total-Pages"))
	body := decodeBody(t, rec)
	assert.Len(t, body["items"], 2)
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(2), body["size"])
}

func TestRouter_ValidationErrors(t *testing.T) {
	srv := newMemoryServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"bad skip", http.MethodGet, "/customers/?skip=abc", nil},
		{"limit too large", http.MethodGet, "/customers/?limit=5000", nil},
		{"missing fields", http.MethodPost, "/customers/", map[string]interface{}{"Email": "x@example.com"}},
		{"survey without status", http.MethodPost, "/surveys/", map[string]interface{}{"SurveyNumber": "S-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION", decodeBody(t, rec)["type"])
		})
	}
}

func TestRouter_MalformedBody(t *testing.T) {
	srv := newMemoryServer(t)
	req := httptest.NewRequest(http.MethodPost, "/customers/", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newMemoryServer(t)

	rec := srv.do(t, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec)["type"])
}

func TestRouter_SurveyStatusAliasAndDetail(t *testing.T) {
	// Arrange
	srv := newMemoryServer(t)
	status := decodeBody(t, srv.do(t, http.MethodPost, "/lookup/survey-statuses/", map[string]interface{}{"StatusName": "Requested"}))
	statusID := status["SurveyStatusId"].(string)

	// Act
	created := srv.do(t, http.MethodPost, "/surveys/", map[string]interface{}{
		"SurveyNumber": "2024-001",
		"StatusId":     statusID,
		"QuotedPrice":  1500,
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	id := decodeBody(t, created)["SurveyId"].(string)
	detail := decodeBody(t, srv.do(t, http.MethodGet, "/surveys/"+id, nil))

	// Assert
	assert.Equal(t, statusID, detail["SurveyStatusId"])
	assert.Equal(t, statusID, detail["StatusId"])
	assert.Equal(t, "1500.00", detail["QuotedPrice"])
	require.NotNil(t, detail["status"])
	assert.Equal(t, "Requested", detail["status"].(map[string]interface{})["StatusName"])
}

func TestRouter_UserSettingsAndBoards(t *testing.T) {
	// Arrange
	srv := newMemoryServer(t)

	// Act
	upsert := srv.do(t, http.MethodPut, "/user-settings/theme/upsert", map[string]interface{}{
		"SettingsType": "theme",
		"SettingsData": map[string]interface{}{"dark": true},
	})
	conflict := srv.do(t, http.MethodPost, "/user-settings/", map[string]interface{}{
		"SettingsType": "theme",
		"SettingsData": map[string]interface{}{},
	})
	board := srv.do(t, http.MethodPost, "/board-configurations/", map[string]interface{}{"BoardName": "Field Crew", "IsDefault": true})
	bySlug := srv.do(t, http.MethodGet, "/board-configurations/by-slug/field-crew", nil)
	def := srv.do(t, http.MethodGet, "/board-configurations/default", nil)

	// Assert
	require.Equal(t, http.StatusOK, upsert.Code, upsert.Body.String())
	assert.Equal(t, map[string]interface{}{"dark": true}, decodeBody(t, upsert)["SettingsData"])
	assert.Equal(t, http.StatusConflict, conflict.Code)
	require.Equal(t, http.StatusCreated, board.Code, board.Body.String())
	assert.Equal(t, "field-crew", decodeBody(t, board)["BoardSlug"])
	assert.Equal(t, http.StatusOK, bySlug.Code)
	assert.Equal(t, "Field Crew", decodeBody(t, def)["BoardName"])
}

func TestRouter_StoreUnavailable(t *testing.T) {
	// Arrange
	conn := storage.NewUnavailableConnection(storage.BackendDynamoDB, errors.New("connection refused"), zap.NewNop())
	srv := newTestServer(t, conn, nil)

	// Act
	list := srv.do(t, http.MethodGet, "/customers/", nil)
	ready := srv.do(t, http.MethodGet, "/ready", nil)
	health := srv.do(t, http.MethodGet, "/health", nil)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, list.Code)
	body := decodeBody(t, list)
	assert.Equal(t, "UNAVAILABLE", body["type"])
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	// Arrange
	limiter := ratelimit.NewSlidingWindow(2, time.Minute, fixedClock)
	srv := newTestServer(t, storage.NewMemoryConnection(zap.NewNop()), limiter)

	// Act
	first := srv.do(t, http.MethodGet, "/customers/", nil)
	second := srv.do(t, http.MethodGet, "/customers/", nil)
	third := srv.do(t, http.MethodGet, "/customers/", nil)
	health := srv.do(t, http.MethodGet, "/health", nil)

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "60", third.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMIT", decodeBody(t, third)["type"])
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRouter_RecordsRouteMetrics(t *testing.T) {
	srv := newMemoryServer(t)

	srv.do(t, http.MethodGet, "/customers/missing", nil)
	metrics := srv.do(t, http.MethodGet, "/metrics", nil)

	assert.Contains(t, metrics.Body.String(), `route="/customers/{id}"`)
}

func TestRouter_GraphQL(t *testing.T) {
	// Arrange
	srv := newMemoryServer(t)
	create := `mutation { createCustomer(input: {CustomerCode: "ACME001", CompanyName: "ACME"}) { customer { CustomerId CompanyName } } }`

	// Act
	created := srv.do(t, http.MethodPost, "/graphql", map[string]interface{}{"query": create})
	listed := srv.do(t, http.MethodPost, "/graphql", map[string]interface{}{
		"query": `{ customers(search: "acme") { total customers { CustomerCode } } }`,
	})

	// Assert
	require.Equal(t, http.StatusOK, created.Code)
	assert.NotContains(t, decodeBody(t, created), "errors")
	data := decodeBody(t, listed)["data"].(map[string]interface{})
	conn := data["customers"].(map[string]interface{})
	assert.Equal(t, float64(1), conn["total"])
	assert.Equal(t, "ACME001", conn["customers"].([]interface{})[0].(map[string]interface{})["CustomerCode"])
}

