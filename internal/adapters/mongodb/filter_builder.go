package mongodb_adapter

import (
	"regexp"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// buildFilter переводит фильтры в запрос MongoDB.
// Пустые фильтры дают пустой документ, то есть все объекты.
func buildFilter(filters domain.PropertyFilters) bson.M {
	query := bson.M{}

	if filters.Type != nil {
		query["type"] = string(*filters.Type)
	}
	if filters.Status != nil {
		query["status"] = string(*filters.Status)
	}
	if filters.Bedrooms != nil {
		query["bedrooms"] = *filters.Bedrooms
	}

	priceFilter := bson.M{}
	if filters.MinPrice != nil {
		priceFilter["$gte"] = *filters.MinPrice
	}
	if filters.MaxPrice != nil {
		priceFilter["$lte"] = *filters.MaxPrice
	}
	if len(priceFilter) > 0 {
		query["price"] = priceFilter
	}

	if filters.Location != "" {
		// значение пользователя ищется как литерал, а не как регулярное выражение
		query["location"] = bson.M{
			"$regex":   regexp.QuoteMeta(filters.Location),
			"$options": "i",
		}
	}

	return query
}
