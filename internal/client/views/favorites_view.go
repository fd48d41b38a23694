package views

import (
	"context"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type FavoritesState struct {
	Properties []domain.Property
	Err        error
	Loading    bool
}

// FavoritesView показывает избранное в порядке добавления
type FavoritesView struct {
	api       PropertyAPI
	favorites Favorites

	mu         sync.Mutex
	generation uint64
	state      FavoritesState
}

func NewFavoritesView(api PropertyAPI, favorites Favorites) *FavoritesView {
	return &FavoritesView{api: api, favorites: favorites}
}

func (v *FavoritesView) State() FavoritesState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Properties = append([]domain.Property(nil), v.state.Properties...)
	return s
}

// Load берет полный список с сервера и сверяет с ним избранное.
// При пустом избранном запрос не выполняется.
func (v *FavoritesView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state = FavoritesState{Loading: true}
	v.mu.Unlock()

	if len(v.favorites.List()) == 0 {
		v.mu.Lock()
		defer v.mu.Unlock()
		if gen == v.generation {
			v.state.Loading = false
		}
		return nil
	}

	all, err := v.api.ListProperties(ctx, domain.PropertyFilters{})

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return ErrStaleResponse
	}

	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		return err
	}

	byID := make(map[string]domain.Property, len(all))
	ids := make([]string, len(all))
	for i, p := range all {
		byID[p.ID] = p
		ids[i] = p.ID
	}

	kept := v.favorites.Sync(ids)
	properties := make([]domain.Property, 0, len(kept))
	for _, id := range kept {
		properties = append(properties, byID[id])
	}
	v.state.Properties = properties
	return nil
}

func (v *FavoritesView) ClearAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.favorites.Clear()
	v.state = FavoritesState{}
}
