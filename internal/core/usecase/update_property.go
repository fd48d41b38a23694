package usecase

import (
	"context"
	"errors"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
	cache   port.PropertyCachePort
	events  port.PropertyEventsPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, cache port.PropertyCachePort, events port.PropertyEventsPort) *UpdatePropertyUseCase {
	if cache == nil {
		cache = port.NoopCache{}
	}
	if events == nil {
		events = port.NoopEvents{}
	}
	return &UpdatePropertyUseCase{storage: storage, cache: cache, events: events}
}

// Execute сливает переданные поля с текущим документом.
// Документ перезаписывается только если результат слияния валиден.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	ucLogger := contextkeys.UseCaseLogger(ctx, "UpdateProperty", id)

	ucLogger.Info("Use case started", nil)

	if err := domain.ValidatePatch(patch); err != nil {
		ucLogger.Warn("Patch failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error while loading property", err, nil)
		}
		return nil, err
	}

	merged := *existing
	merged.ApplyPatch(patch)
	merged.Normalize()
	if err := domain.ValidateProperty(merged); err != nil {
		ucLogger.Warn("Merged property failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	updated, err := uc.storage.Replace(ctx, merged)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property disappeared before update", nil)
		} else {
			ucLogger.Error("Storage returned an error while saving property", err, nil)
		}
		return nil, err
	}

	invalidateLists(ctx, uc.cache, ucLogger)

	if err := uc.events.PropertyUpdated(ctx, *updated); err != nil {
		ucLogger.Warn("Failed to publish property updated event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
