package usecases_port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}
