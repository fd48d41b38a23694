package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/adapters/memory"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createBody = `{
	"title": "  Lakeside cottage ",
	"description": "Quiet place near the water",
	"price": 150000,
	"location": "Lakeside Ave 12",
	"bedrooms": 2,
	"bathrooms": 1.5,
	"area": 90,
	"type": "house",
	"images": ["https://img.example.com/a.jpg"],
	"amenities": ["garden"]
}`

type failingPinger struct{}

func (failingPinger) Ping(ctx context.Context) error { return errors.New("no route to host") }

func newTestRouter(t *testing.T, metrics bool) (http.Handler, *memory.PropertyStorageAdapter) {
	t.Helper()
	store := memory.NewPropertyStorageAdapter()
	handler := NewPropertyHandler(
		usecase.NewListPropertiesUseCase(store, nil),
		usecase.NewGetPropertyUseCase(store),
		usecase.NewCreatePropertyUseCase(store, nil, nil),
		usecase.NewUpdatePropertyUseCase(store, nil, nil),
		usecase.NewDeletePropertyUseCase(store, nil, nil),
	)
	router := NewRouter(ServerConfig{MetricsEnabled: metrics}, handler, store, contextkeys.LoggerFromContext(context.Background()))
	return router, store
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeProperty(t *testing.T, rec *httptest.ResponseRecorder) PropertyResponse {
	t.Helper()
	var p PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestRootAndHealth(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Property Management API is running!"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthReportsStoreFailure(t *testing.T) {
	store := memory.NewPropertyStorageAdapter()
	handler := NewPropertyHandler(
		usecase.NewListPropertiesUseCase(store, nil),
		usecase.NewGetPropertyUseCase(store),
		usecase.NewCreatePropertyUseCase(store, nil, nil),
		usecase.NewUpdatePropertyUseCase(store, nil, nil),
		usecase.NewDeletePropertyUseCase(store, nil, nil),
	)
	router := NewRouter(ServerConfig{}, handler, failingPinger{}, contextkeys.LoggerFromContext(context.Background()))

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateAndGetProperty(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodPost, "/api/properties", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	created := decodeProperty(t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Lakeside cottage", created.Title)
	assert.Equal(t, "available", created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doRequest(t, router, http.MethodGet, "/api/properties/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeProperty(t, rec)
	assert.Equal(t, created, got)
	assert.Equal(t, 1.5, got.Bathrooms)
	assert.Equal(t, []string{"garden"}, got.Amenities)
}

func TestPropertyJSONShape(t *testing.T) {
	router, _ := newTestRouter(t, false)
	rec := doRequest(t, router, http.MethodPost, "/api/properties",
		`{"title":"t","description":"d","price":1,"location":"l","bedrooms":0,"bathrooms":0,"area":1,"type":"condo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"_id", "title", "description", "price", "location", "bedrooms", "bathrooms",
		"area", "type", "status", "images", "amenities", "createdAt", "updatedAt"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []interface{}{}, raw["images"])
}

func TestCreateValidationFailure(t *testing.T) {
	router, store := newTestRouter(t, false)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{oops`},
		{name: "array body", body: `[]`},
		{name: "missing fields", body: `{"title":"only title"}`},
		{name: "negative price", body: strings.Replace(createBody, `"price": 150000`, `"price": -1`, 1)},
		{name: "bad enum", body: strings.Replace(createBody, `"type": "house"`, `"type": "castle"`, 1)},
		{name: "blank title", body: strings.Replace(createBody, `"  Lakeside cottage "`, `"   "`, 1)},
		{name: "quarter bathroom", body: strings.Replace(createBody, `"bathrooms": 1.5`, `"bathrooms": 1.25`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/properties", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Error creating property", resp.Message)
			assert.NotEmpty(t, resp.Details)
		})
	}

	list, err := store.List(context.Background(), domain.PropertyFilters{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBedroomsAcceptsIntegralFloat(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodPost, "/api/properties",
		strings.Replace(createBody, `"bedrooms": 2`, `"bedrooms": 2.0`, 1))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeProperty(t, rec)
	assert.Equal(t, 2, created.Bedrooms)

	rec = doRequest(t, router, http.MethodPut, "/api/properties/"+created.ID, `{"bedrooms": 3.0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 3, decodeProperty(t, rec).Bedrooms)
}

func TestBedroomsErrorsNameTheField(t *testing.T) {
	router, _ := newTestRouter(t, false)

	for _, value := range []string{"2.5", "1e12", `"two"`} {
		t.Run(value, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/properties",
				strings.Replace(createBody, `"bedrooms": 2`, `"bedrooms": `+value, 1))
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Details)
			assert.Equal(t, "bedrooms", resp.Details[0].Field)
		})
	}
}

func TestListPropertiesWithFilters(t *testing.T) {
	router, _ := newTestRouter(t, false)

	bodies := []string{
		createBody,
		strings.NewReplacer(`"Lakeside Ave 12"`, `"Hillcrest Rd 3"`, `"price": 150000`, `"price": 175000`).Replace(createBody),
		strings.NewReplacer(`"Lakeside Ave 12"`, `"Blue LAKE view"`, `"price": 150000`, `"price": 450000`).Replace(createBody),
	}
	for _, b := range bodies {
		require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/api/properties", b).Code)
	}

	var all []PropertyResponse
	rec := doRequest(t, router, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "Blue LAKE view", all[0].Location, "newest first")

	var lake []PropertyResponse
	rec = doRequest(t, router, http.MethodGet, "/api/properties?location=Lake", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lake))
	assert.Len(t, lake, 2)

	var priced []PropertyResponse
	rec = doRequest(t, router, http.MethodGet, "/api/properties?minPrice=100000&maxPrice=200000", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &priced))
	assert.Len(t, priced, 2)
	for _, p := range priced {
		assert.True(t, p.Price >= 100000 && p.Price <= 200000)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/properties?bedrooms=abc&type=castle", "")
	var ignored []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ignored))
	assert.Len(t, ignored, 3)

	rec = doRequest(t, router, http.MethodGet, "/api/properties?status=sold", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateProperty(t *testing.T) {
	router, _ := newTestRouter(t, false)
	created := decodeProperty(t, doRequest(t, router, http.MethodPost, "/api/properties", createBody))

	rec := doRequest(t, router, http.MethodPut, "/api/properties/"+created.ID, `{"status":"rented","images":[]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeProperty(t, rec)
	assert.Equal(t, "rented", updated.Status)
	assert.Equal(t, []string{}, updated.Images)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	rec = doRequest(t, router, http.MethodPut, "/api/properties/"+created.ID, `{"type":"castle"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	after := decodeProperty(t, doRequest(t, router, http.MethodGet, "/api/properties/"+created.ID, ""))
	assert.Equal(t, updated, after)

	rec = doRequest(t, router, http.MethodPut, "/api/properties/missing", `{"price":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Property not found"}`, rec.Body.String())
}

func TestDeleteProperty(t *testing.T) {
	router, _ := newTestRouter(t, false)
	created := decodeProperty(t, doRequest(t, router, http.MethodPost, "/api/properties", createBody))

	rec := doRequest(t, router, http.MethodDelete, "/api/properties/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Property deleted successfully"}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/properties/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodDelete, "/api/properties/"+created.ID, "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, true)

	doRequest(t, router, http.MethodGet, "/api/properties/some-id", "")
	rec := doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `listing_service_http_requests_total{method="GET",route="/api/properties/{id}",status="404"} 1`)
}

func TestTraceIDIsPropagated(t *testing.T) {
	router, _ := newTestRouter(t, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "7f1b6a52-0e65-4d2e-9d0c-3f1f2c4b5a61")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "7f1b6a52-0e65-4d2e-9d0c-3f1f2c4b5a61", rec.Header().Get("X-Trace-ID"))
}
