package usecases_port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyPatch) (*domain.Property, error)
}
