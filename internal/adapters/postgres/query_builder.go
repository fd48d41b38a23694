package postgres_adapter

import (
	"fmt"
	"strings"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyFilters строит WHERE и аргументы для выборки объявлений
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.Type != nil {
		qb.addCondition("%s = $%d", "type", string(*filters.Type))
	}
	if filters.Status != nil {
		qb.addCondition("%s = $%d", "status", string(*filters.Status))
	}
	if filters.Bedrooms != nil {
		qb.addCondition("%s = $%d", "bedrooms", *filters.Bedrooms)
	}

	qb.AddFloatFilter("price", filters.MinPrice, filters.MaxPrice)

	// Поиск подстроки без учета регистра, спецсимволы LIKE экранируются
	if filters.Location != "" {
		qb.addCondition(`%s ILIKE $%d ESCAPE '\'`, "location", "%"+escapeLike(filters.Location)+"%")
	}

	return qb.build()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

const selectColumns = `id::text, title, description, price, location, bedrooms, bathrooms, area,
	type, status, images, amenities, created_at, updated_at`

func buildListQuery(filters domain.PropertyFilters) (string, []interface{}) {
	where, args := applyFilters(filters)
	query := "SELECT " + selectColumns + " FROM properties"
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY created_at DESC, id DESC"
	return query, args
}
