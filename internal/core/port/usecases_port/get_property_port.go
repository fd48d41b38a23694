package usecases_port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}
