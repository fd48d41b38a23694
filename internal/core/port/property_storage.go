package port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// PropertyStoragePort - контракт хранилища объявлений.
// Адаптеры возвращают domain.ErrPropertyNotFound для отсутствующего
// или некорректного идентификатора и *domain.StoreError для сбоев драйвера.
type PropertyStoragePort interface {
	// List возвращает объекты, подходящие под фильтры, новые первыми
	List(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	// Create назначает ID, createdAt и updatedAt
	Create(ctx context.Context, property domain.Property) (*domain.Property, error)
	// Replace перезаписывает документ целиком и обновляет updatedAt
	Replace(ctx context.Context, property domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
