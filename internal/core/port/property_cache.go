package port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// ListLookup - результат чтения списка из кэша.
// Slot - ключ, вычисленный по поколению кэша на момент чтения. Результат
// запроса к хранилищу записывается именно в него: если между чтением и
// записью список был инвалидирован, запись уйдет в уже мертвое поколение.
type ListLookup struct {
	Properties []domain.Property
	Found      bool
	Slot       string
}

// PropertyCachePort - кэш результатов List. Ошибки кэша не должны
// ломать запрос, use case их только логирует.
type PropertyCachePort interface {
	GetList(ctx context.Context, filters domain.PropertyFilters) (ListLookup, error)
	SetList(ctx context.Context, slot string, properties []domain.Property) error
	InvalidateLists(ctx context.Context) error
	Close() error
}

// NoopCache используется, когда кэш выключен в конфигурации
type NoopCache struct{}

func (NoopCache) GetList(ctx context.Context, filters domain.PropertyFilters) (ListLookup, error) {
	return ListLookup{}, nil
}
func (NoopCache) SetList(ctx context.Context, slot string, properties []domain.Property) error {
	return nil
}
func (NoopCache) InvalidateLists(ctx context.Context) error { return nil }
func (NoopCache) Close() error                              { return nil }
