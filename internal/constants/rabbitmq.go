package constants

// Обменник событий объявлений
const (
	ExchangePropertyEvents = "property_events"
	ExchangeTypeTopic      = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyPropertyCreated = "property.created"
	RoutingKeyPropertyUpdated = "property.updated"
	RoutingKeyPropertyDeleted = "property.deleted"
	RoutingKeyAllProperty     = "property.*"
)
