package usecase

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
	cache   port.PropertyCachePort
	events  port.PropertyEventsPort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort, cache port.PropertyCachePort, events port.PropertyEventsPort) *CreatePropertyUseCase {
	if cache == nil {
		cache = port.NoopCache{}
	}
	if events == nil {
		events = port.NoopEvents{}
	}
	return &CreatePropertyUseCase{storage: storage, cache: cache, events: events}
}

// Execute проверяет черновик и сохраняет новый объект.
// При ошибке валидации хранилище не вызывается.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, draft domain.PropertyPatch) (*domain.Property, error) {
	ucLogger := contextkeys.UseCaseLogger(ctx, "CreateProperty", "")

	ucLogger.Info("Use case started", nil)

	property := domain.NewPropertyFromDraft(draft)
	if err := domain.ValidateProperty(property); err != nil {
		ucLogger.Warn("Property failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	created, err := uc.storage.Create(ctx, property)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	invalidateLists(ctx, uc.cache, ucLogger)

	if err := uc.events.PropertyCreated(ctx, *created); err != nil {
		ucLogger.Warn("Failed to publish property created event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": created.ID})
	return created, nil
}

func invalidateLists(ctx context.Context, cache port.PropertyCachePort, logger port.LoggerPort) {
	if err := cache.InvalidateLists(ctx); err != nil {
		logger.Warn("Failed to invalidate cached lists", port.Fields{"error": err.Error()})
	}
}
