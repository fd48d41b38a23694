package usecase

import (
	"context"
	"errors"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
	cache   port.PropertyCachePort
	events  port.PropertyEventsPort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort, cache port.PropertyCachePort, events port.PropertyEventsPort) *DeletePropertyUseCase {
	if cache == nil {
		cache = port.NoopCache{}
	}
	if events == nil {
		events = port.NoopEvents{}
	}
	return &DeletePropertyUseCase{storage: storage, cache: cache, events: events}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) error {
	ucLogger := contextkeys.UseCaseLogger(ctx, "DeleteProperty", id)

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return err
	}

	invalidateLists(ctx, uc.cache, ucLogger)

	if err := uc.events.PropertyDeleted(ctx, id); err != nil {
		ucLogger.Warn("Failed to publish property deleted event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
