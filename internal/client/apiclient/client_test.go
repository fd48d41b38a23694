package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/adapters/memory"
	"github.com/Abhishek10293/PropertyManagement/internal/adapters/rest"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func draft(title, location string, price float64) domain.PropertyPatch {
	typ := domain.PropertyTypeHouse
	return domain.PropertyPatch{
		Title:        strPtr(title),
		Description:  strPtr("Quiet street"),
		Price:        floatPtr(price),
		Location:     strPtr(location),
		Bedrooms:     intPtr(3),
		Bathrooms:    floatPtr(2),
		Area:         floatPtr(140),
		Type:         &typ,
		Amenities:    []string{"garage"},
		AmenitiesSet: true,
	}
}

// newTestAPI поднимает настоящий REST-роутер поверх хранилища в памяти
func newTestAPI(t *testing.T) *Client {
	t.Helper()
	store := memory.NewPropertyStorageAdapter()
	handler := rest.NewPropertyHandler(
		usecase.NewListPropertiesUseCase(store, nil),
		usecase.NewGetPropertyUseCase(store),
		usecase.NewCreatePropertyUseCase(store, nil, nil),
		usecase.NewUpdatePropertyUseCase(store, nil, nil),
		usecase.NewDeletePropertyUseCase(store, nil, nil),
	)
	router := rest.NewRouter(rest.ServerConfig{}, handler, store, contextkeys.LoggerFromContext(context.Background()))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	client := newTestAPI(t)

	created, err := client.CreateProperty(ctx, draft("Maple house", "Maple St 3", 420000))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.PropertyStatusAvailable, created.Status)
	assert.Equal(t, []string{"garage"}, created.Amenities)
	assert.Equal(t, []string{}, created.Images)

	got, err := client.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maple house", got.Title)

	sold := domain.PropertyStatusSold
	updated, err := client.UpdateProperty(ctx, created.ID, domain.PropertyPatch{Status: &sold})
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusSold, updated.Status)
	assert.Equal(t, 420000.0, updated.Price)

	require.NoError(t, client.DeleteProperty(ctx, created.ID))

	_, err = client.GetProperty(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClientListWithFilters(t *testing.T) {
	ctx := context.Background()
	client := newTestAPI(t)

	_, err := client.CreateProperty(ctx, draft("Cheap", "Lakeside Ave", 90000))
	require.NoError(t, err)
	_, err = client.CreateProperty(ctx, draft("Pricey", "lakeside view", 900000))
	require.NoError(t, err)
	_, err = client.CreateProperty(ctx, draft("Hill", "Hillcrest", 95000))
	require.NoError(t, err)

	all, err := client.ListProperties(ctx, domain.PropertyFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Hill", all[0].Title)

	lake, err := client.ListProperties(ctx, domain.PropertyFilters{Location: "LAKE", MaxPrice: floatPtr(100000)})
	require.NoError(t, err)
	require.Len(t, lake, 1)
	assert.Equal(t, "Cheap", lake[0].Title)
}

func TestClientValidationError(t *testing.T) {
	client := newTestAPI(t)

	bad := draft("Broken", "Nowhere", -10)
	_, err := client.CreateProperty(context.Background(), bad)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsValidation())
	assert.NotEmpty(t, apiErr.Message)
	assert.NotEmpty(t, apiErr.Details)
}

func TestEncodeFiltersOnlySetFields(t *testing.T) {
	assert.Equal(t, "", encodeFilters(domain.PropertyFilters{}))

	condo := domain.PropertyTypeCondo
	q := encodeFilters(domain.PropertyFilters{Type: &condo, MinPrice: floatPtr(1500.5), Bedrooms: intPtr(2)})
	assert.Equal(t, "bedrooms=2&minPrice=1500.5&type=condo", q)
}

func TestClientPropagatesTraceIDAndHandlesPlainErrors(t *testing.T) {
	var gotTrace, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get("X-Trace-ID")
		gotAccept = r.Header.Get("Accept")
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	_, err := New(srv.URL).ListProperties(ctx, domain.PropertyFilters{})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.False(t, apiErr.IsNotFound())
	assert.Equal(t, "trace-123", gotTrace)
	assert.Equal(t, "application/json", gotAccept)
}
