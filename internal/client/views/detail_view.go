package views

import (
	"context"
	"errors"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// ErrNoProperty - операция требует загруженного объявления
var ErrNoProperty = errors.New("no property loaded")

type DetailState struct {
	ID         string
	Property   *domain.Property
	IsFavorite bool
	NotFound   bool
	Deleted    bool
	Err        error
	Loading    bool
}

type DetailView struct {
	api        PropertyAPI
	favorites  Favorites
	isNotFound NotFoundChecker

	mu         sync.Mutex
	generation uint64
	state      DetailState
}

func NewDetailView(api PropertyAPI, favorites Favorites, isNotFound NotFoundChecker) *DetailView {
	return &DetailView{api: api, favorites: favorites, isNotFound: isNotFound}
}

func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load загружает объявление. Если сервер его не знает, id убирается из избранного.
func (v *DetailView) Load(ctx context.Context, id string) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state = DetailState{ID: id, Loading: true}
	v.mu.Unlock()

	property, err := v.api.GetProperty(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return ErrStaleResponse
	}

	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		if v.isNotFound != nil && v.isNotFound(err) {
			v.state.NotFound = true
			v.favorites.Remove(id)
		}
		return err
	}
	v.state.Property = property
	v.state.IsFavorite = v.favorites.IsFavorite(id)
	return nil
}

func (v *DetailView) Retry(ctx context.Context) error {
	v.mu.Lock()
	id := v.state.ID
	v.mu.Unlock()
	return v.Load(ctx, id)
}

// ToggleFavorite возвращает новое состояние флага
func (v *DetailView) ToggleFavorite() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Property == nil {
		return false, ErrNoProperty
	}
	v.state.IsFavorite = v.favorites.Toggle(v.state.Property.ID)
	return v.state.IsFavorite, nil
}

// Delete удаляет объявление. Избранное меняется только после ответа сервера.
func (v *DetailView) Delete(ctx context.Context) error {
	v.mu.Lock()
	if v.state.Property == nil {
		v.mu.Unlock()
		return ErrNoProperty
	}
	id := v.state.Property.ID
	v.generation++
	v.mu.Unlock()

	err := v.api.DeleteProperty(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Err = err
		return err
	}
	v.favorites.Remove(id)
	v.state.Deleted = true
	v.state.IsFavorite = false
	v.state.Err = nil
	return nil
}
