// Package views - модели экранов клиента: список, карточка, избранное,
// форма создания. Состояние хранится в виде, пригодном для отрисовки.
package views

import (
	"context"
	"errors"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// PropertyAPI - операции сервиса объявлений, нужные экранам
type PropertyAPI interface {
	ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	CreateProperty(ctx context.Context, draft domain.PropertyPatch) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// Favorites - набор избранного, с которым работают экраны
type Favorites interface {
	List() []string
	IsFavorite(id string) bool
	Toggle(id string) bool
	Remove(id string)
	Clear()
	Sync(liveIDs []string) []string
}

// ErrStaleResponse - ответ пришел после более нового запроса и отброшен
var ErrStaleResponse = errors.New("stale response discarded")

// NotFoundChecker распознает ответ 404 конкретного API-клиента
type NotFoundChecker func(err error) bool
