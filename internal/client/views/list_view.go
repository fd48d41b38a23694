package views

import (
	"context"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// ListState - снимок экрана списка
type ListState struct {
	Filters    domain.PropertyFilters
	Properties []domain.Property
	Err        error
	Loading    bool
}

type ListView struct {
	api       PropertyAPI
	favorites Favorites

	mu         sync.Mutex
	generation uint64
	state      ListState
}

func NewListView(api PropertyAPI, favorites Favorites) *ListView {
	return &ListView{api: api, favorites: favorites}
}

func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Properties = append([]domain.Property(nil), v.state.Properties...)
	return s
}

// Load запрашивает список. Применяется только ответ на последний запрос.
// Избранное сверяется лишь с полным (нефильтрованным) списком.
func (v *ListView) Load(ctx context.Context, filters domain.PropertyFilters) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state.Filters = filters
	v.state.Loading = true
	v.state.Err = nil
	v.mu.Unlock()

	properties, err := v.api.ListProperties(ctx, filters)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return ErrStaleResponse
	}

	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		v.state.Properties = nil
		return err
	}
	v.state.Properties = properties

	if filters.IsEmpty() && v.favorites != nil {
		ids := make([]string, len(properties))
		for i, p := range properties {
			ids[i] = p.ID
		}
		v.favorites.Sync(ids)
	}
	return nil
}

// Retry повторяет запрос с последними фильтрами
func (v *ListView) Retry(ctx context.Context) error {
	v.mu.Lock()
	filters := v.state.Filters
	v.mu.Unlock()
	return v.Load(ctx, filters)
}

func (v *ListView) ClearFilters(ctx context.Context) error {
	return v.Load(ctx, domain.PropertyFilters{})
}
