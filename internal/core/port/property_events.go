package port

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// PropertyEventsPort публикует события жизненного цикла объявления
type PropertyEventsPort interface {
	PropertyCreated(ctx context.Context, property domain.Property) error
	PropertyUpdated(ctx context.Context, property domain.Property) error
	PropertyDeleted(ctx context.Context, propertyID string) error
	Close() error
}

// NoopEvents используется, когда брокер выключен
type NoopEvents struct{}

func (NoopEvents) PropertyCreated(ctx context.Context, property domain.Property) error { return nil }
func (NoopEvents) PropertyUpdated(ctx context.Context, property domain.Property) error { return nil }
func (NoopEvents) PropertyDeleted(ctx context.Context, propertyID string) error        { return nil }
func (NoopEvents) Close() error                                                          { return nil }
