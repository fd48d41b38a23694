package usecase

import (
	"context"
	"errors"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	ucLogger := contextkeys.UseCaseLogger(ctx, "GetProperty", id)

	ucLogger.Info("Use case started", nil)

	property, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
