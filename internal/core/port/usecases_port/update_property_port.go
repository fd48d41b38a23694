package usecases_port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
}
