package usecase

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type ListPropertiesUseCase struct {
	storage port.PropertyStoragePort
	cache   port.PropertyCachePort
}

func NewListPropertiesUseCase(storage port.PropertyStoragePort, cache port.PropertyCachePort) *ListPropertiesUseCase {
	if cache == nil {
		cache = port.NoopCache{}
	}
	return &ListPropertiesUseCase{storage: storage, cache: cache}
}

// Execute возвращает объекты, подходящие под фильтры, новые первыми.
// Пустой результат - это пустой срез, а не ошибка.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	ucLogger := contextkeys.UseCaseLogger(ctx, "ListProperties", "").WithFields(port.Fields{"filters": filters})

	ucLogger.Info("Use case started", nil)

	lookup, err := uc.cache.GetList(ctx, filters)
	if err != nil {
		ucLogger.Warn("Cache lookup failed, falling back to storage", port.Fields{"error": err.Error()})
	} else if lookup.Found {
		ucLogger.Info("Use case finished from cache", port.Fields{"total_found": len(lookup.Properties)})
		return lookup.Properties, nil
	}

	properties, err := uc.storage.List(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	// пишем в слот, полученный до запроса к хранилищу
	if lookup.Slot != "" {
		if err := uc.cache.SetList(ctx, lookup.Slot, properties); err != nil {
			ucLogger.Warn("Failed to store list in cache", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
