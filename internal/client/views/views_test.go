package views

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/client/favorites"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("404")

func isNotFound(err error) bool { return errors.Is(err, errNotFound) }

type fakeAPI struct {
	mu         sync.Mutex
	properties []domain.Property
	listErr    error
	deleteErr  error
	created    []domain.PropertyPatch

	// gates позволяет задержать конкретный вызов List до закрытия канала
	gates map[string]chan struct{}
}

func newFakeAPI(props ...domain.Property) *fakeAPI {
	return &fakeAPI{properties: props, gates: make(map[string]chan struct{})}
}

func (f *fakeAPI) gate(location string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[location] = ch
	return ch
}

func (f *fakeAPI) ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	f.mu.Lock()
	gate := f.gates[filters.Location]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []domain.Property{}
	for _, p := range f.properties {
		if filters.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.properties {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeAPI) CreateProperty(ctx context.Context, draft domain.PropertyPatch) (*domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, draft)
	p := domain.NewPropertyFromDraft(draft)
	p.ID = "new-id"
	f.properties = append(f.properties, p)
	return &p, nil
}

func (f *fakeAPI) DeleteProperty(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, p := range f.properties {
		if p.ID == id {
			f.properties = append(f.properties[:i], f.properties[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func prop(id, location string, price float64) domain.Property {
	return domain.Property{
		ID:          id,
		Title:       "Home " + id,
		Description: "Nice",
		Price:       price,
		Location:    location,
		Bedrooms:    3,
		Bathrooms:   2.5,
		Area:        1200,
		Type:        domain.PropertyTypeHouse,
		Status:      domain.PropertyStatusAvailable,
		Images:      []string{},
		Amenities:   []string{"pool"},
	}
}

func newFavorites(ids ...string) *favorites.Service {
	svc := favorites.NewService(favorites.NewMemoryStorage(), contextkeys.LoggerFromContext(context.Background()))
	for _, id := range ids {
		svc.Add(id)
	}
	return svc
}

func TestListView_SyncsFavoritesOnlyForUnfilteredList(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(prop("A", "Lakeside", 100), prop("C", "Hill", 200), prop("D", "Hill", 300))
	favs := newFavorites("A", "B", "C")
	view := NewListView(api, favs)

	require.NoError(t, view.Load(ctx, domain.PropertyFilters{Location: "Hill"}))
	assert.Len(t, view.State().Properties, 2)
	assert.Equal(t, []string{"A", "B", "C"}, favs.List(), "filtered list must not prune favorites")

	require.NoError(t, view.ClearFilters(ctx))
	assert.Len(t, view.State().Properties, 3)
	assert.Equal(t, []string{"A", "C"}, favs.List())
}

func TestListView_StaleResponseIsIgnored(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(prop("A", "Lakeside", 100), prop("B", "Hill", 200))
	view := NewListView(api, newFavorites())

	slow := api.gate("Lake")
	staleErr := make(chan error, 1)
	go func() {
		staleErr <- view.Load(ctx, domain.PropertyFilters{Location: "Lake"})
	}()

	// ждем, пока первый запрос зарегистрирует свое поколение
	require.Eventually(t, func() bool { return view.State().Loading }, time.Second, time.Millisecond)

	require.NoError(t, view.Load(ctx, domain.PropertyFilters{Location: "Hill"}))
	close(slow)

	assert.ErrorIs(t, <-staleErr, ErrStaleResponse)
	state := view.State()
	assert.Equal(t, "Hill", state.Filters.Location)
	require.Len(t, state.Properties, 1)
	assert.Equal(t, "B", state.Properties[0].ID)
}

func TestListView_ErrorAndRetry(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(prop("A", "Lakeside", 100))
	api.listErr = errors.New("connection refused")
	favs := newFavorites("A")
	view := NewListView(api, favs)

	assert.Error(t, view.Load(ctx, domain.PropertyFilters{}))
	assert.Error(t, view.State().Err)
	assert.Equal(t, []string{"A"}, favs.List(), "failed fetch must not prune favorites")
	assert.Contains(t, RenderList(view.State(), nil), "Failed to fetch properties")

	api.listErr = nil
	require.NoError(t, view.Retry(ctx))
	assert.NoError(t, view.State().Err)
	assert.Len(t, view.State().Properties, 1)
}

func TestDetailView_NotFoundDropsFavorite(t *testing.T) {
	ctx := context.Background()
	favs := newFavorites("gone", "A")
	view := NewDetailView(newFakeAPI(prop("A", "X", 1)), favs, isNotFound)

	err := view.Load(ctx, "gone")
	assert.ErrorIs(t, err, errNotFound)
	assert.True(t, view.State().NotFound)
	assert.Equal(t, []string{"A"}, favs.List())
	assert.Contains(t, RenderDetail(view.State()), "Property not found")
}

func TestDetailView_ToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(prop("A", "X", 1))
	favs := newFavorites()
	view := NewDetailView(api, favs, isNotFound)

	require.NoError(t, view.Load(ctx, "A"))
	assert.False(t, view.State().IsFavorite)

	on, err := view.ToggleFavorite()
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, favs.IsFavorite("A"))

	api.deleteErr = errors.New("server error")
	assert.Error(t, view.Delete(ctx))
	assert.True(t, favs.IsFavorite("A"), "failed delete must keep favorite")
	assert.False(t, view.State().Deleted)

	api.deleteErr = nil
	require.NoError(t, view.Delete(ctx))
	assert.False(t, favs.IsFavorite("A"))
	assert.True(t, view.State().Deleted)
}

func TestDetailView_OperationsWithoutProperty(t *testing.T) {
	view := NewDetailView(newFakeAPI(), newFavorites(), isNotFound)

	_, err := view.ToggleFavorite()
	assert.ErrorIs(t, err, ErrNoProperty)
	assert.ErrorIs(t, view.Delete(context.Background()), ErrNoProperty)
}

func TestFavoritesView(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(prop("A", "X", 1), prop("C", "X", 2), prop("D", "X", 3))
	favs := newFavorites("C", "B", "A")
	view := NewFavoritesView(api, favs)

	require.NoError(t, view.Load(ctx))
	state := view.State()
	require.Len(t, state.Properties, 2)
	assert.Equal(t, "C", state.Properties[0].ID)
	assert.Equal(t, "A", state.Properties[1].ID)
	assert.Equal(t, []string{"C", "A"}, favs.List())

	view.ClearAll()
	assert.Empty(t, favs.List())
	assert.Contains(t, RenderFavorites(view.State()), "No favorite properties yet")
}

func TestFavoritesView_EmptySkipsRequest(t *testing.T) {
	api := newFakeAPI()
	api.listErr = errors.New("must not be called")
	view := NewFavoritesView(api, newFavorites())

	require.NoError(t, view.Load(context.Background()))
	assert.NoError(t, view.State().Err)
}

func TestCreateForm(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	form := NewCreateForm(api)

	_, err := form.Submit(ctx)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, api.created)

	assert.Error(t, form.SetField(FieldPrice, "lots"))
	assert.Error(t, form.SetField("color", "red"))

	require.NoError(t, form.SetField(FieldTitle, "Loft"))
	require.NoError(t, form.SetField(FieldDescription, "Open plan"))
	require.NoError(t, form.SetField(FieldLocation, "Dock St"))
	require.NoError(t, form.SetField(FieldPrice, "250000"))
	require.NoError(t, form.SetField(FieldBedrooms, "2"))
	require.NoError(t, form.SetField(FieldBathrooms, "1.5"))
	require.NoError(t, form.SetField(FieldArea, "900"))
	require.NoError(t, form.SetField(FieldType, "Condo"))
	form.AddImage("https://img/1.jpg")
	form.AddImage("   ")
	form.AddAmenity("gym")
	form.AddAmenity("parking")
	form.RemoveAmenity(0)
	form.RemoveAmenity(10)

	draft := form.Draft()
	assert.Equal(t, []string{"https://img/1.jpg"}, draft.Images)
	assert.Equal(t, []string{"parking"}, draft.Amenities)
	require.NoError(t, form.Validate())

	created, err := form.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyTypeCondo, created.Type)
	assert.Equal(t, domain.PropertyStatusAvailable, created.Status)
	assert.Nil(t, form.Draft().Title, "form resets after success")
}

func TestCreateForm_KeepsValuesOnFailure(t *testing.T) {
	form := NewCreateForm(newFakeAPI())
	require.NoError(t, form.SetField(FieldTitle, "Kept"))
	require.NoError(t, form.SetField(FieldBathrooms, "1.25"))

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, err, form.Err())
	assert.Equal(t, "Kept", *form.Draft().Title)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "1,200 sq ft", FormatArea(1200))
	assert.Equal(t, "2.5", FormatBathrooms(2.5))
	assert.Equal(t, "2", FormatBathrooms(2))
}

func TestRenderCardAndDetail(t *testing.T) {
	p := prop("A", "Lakeside Ave", 1250000)

	card := RenderPropertyCard(p, true)
	assert.Contains(t, card, "Home A")
	assert.Contains(t, card, "$1,250,000")
	assert.Contains(t, card, "1,200 sq ft")
	assert.Contains(t, card, "Available")

	detail := RenderDetail(DetailState{Property: &p, IsFavorite: true})
	assert.Contains(t, detail, "Amenities")
	assert.Contains(t, detail, "pool")

	empty := RenderList(ListState{Properties: []domain.Property{}}, nil)
	assert.Contains(t, empty, "No properties found")
}
