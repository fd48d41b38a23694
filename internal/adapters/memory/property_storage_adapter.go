package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/google/uuid"
)

type storedProperty struct {
	property domain.Property
	seq      uint64
}

// PropertyStorageAdapter держит объявления в памяти процесса.
// Используется при STORE_DRIVER=memory и в тестах.
type PropertyStorageAdapter struct {
	mu    sync.RWMutex
	items map[string]storedProperty
	seq   uint64
	now   func() time.Time
}

func NewPropertyStorageAdapter() *PropertyStorageAdapter {
	return &PropertyStorageAdapter{
		items: make(map[string]storedProperty),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени (для тестов)
func (a *PropertyStorageAdapter) WithClock(now func() time.Time) *PropertyStorageAdapter {
	a.now = now
	return a
}

func (a *PropertyStorageAdapter) List(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MemoryPropertyStorage",
		"method":    "List",
	})

	a.mu.RLock()
	matched := make([]storedProperty, 0, len(a.items))
	for _, item := range a.items {
		if filters.Matches(item.property) {
			matched = append(matched, item)
		}
	}
	a.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		ci, cj := matched[i].property.CreatedAt, matched[j].property.CreatedAt
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return matched[i].seq > matched[j].seq
	})

	result := make([]domain.Property, len(matched))
	for i, item := range matched {
		result[i] = clone(item.property)
	}

	logger.Debug("Properties listed", port.Fields{"count": len(result)})
	return result, nil
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	item, ok := a.items[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p := clone(item.property)
	return &p, nil
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	property.ID = uuid.NewString()
	property.CreatedAt = now
	property.UpdatedAt = now
	property.Normalize()

	a.seq++
	a.items[property.ID] = storedProperty{property: clone(property), seq: a.seq}

	p := clone(property)
	return &p, nil
}

func (a *PropertyStorageAdapter) Replace(ctx context.Context, property domain.Property) (*domain.Property, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item, ok := a.items[property.ID]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	property.CreatedAt = item.property.CreatedAt
	property.UpdatedAt = a.now()
	property.Normalize()
	item.property = clone(property)
	a.items[property.ID] = item

	p := clone(property)
	return &p, nil
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.items[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(a.items, id)
	return nil
}

func (a *PropertyStorageAdapter) Ping(ctx context.Context) error { return nil }

func (a *PropertyStorageAdapter) Close(ctx context.Context) error { return nil }

func clone(p domain.Property) domain.Property {
	p.Images = append([]string{}, p.Images...)
	p.Amenities = append([]string{}, p.Amenities...)
	return p
}
