package postgres_adapter

import (
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestApplyFilters_Empty(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestApplyFilters_AllCriteria(t *testing.T) {
	condo := domain.PropertyTypeCondo
	available := domain.PropertyStatusAvailable
	minPrice, maxPrice := 100.0, 900.0
	bedrooms := 2

	where, args := applyFilters(domain.PropertyFilters{
		Type:     &condo,
		Status:   &available,
		Bedrooms: &bedrooms,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Location: "Lake",
	})

	assert.Equal(t,
		`WHERE type = $1 AND status = $2 AND bedrooms = $3 AND price >= $4 AND price <= $5 AND location ILIKE $6 ESCAPE '\'`,
		where)
	assert.Equal(t, []interface{}{"condo", "available", 2, 100.0, 900.0, "%Lake%"}, args)
}

func TestApplyFilters_EscapesLikeWildcards(t *testing.T) {
	_, args := applyFilters(domain.PropertyFilters{Location: `100%_off\`})
	assert.Equal(t, []interface{}{`%100\%\_off\\%`}, args)
}

func TestBuildListQuery_OrdersNewestFirst(t *testing.T) {
	query, _ := buildListQuery(domain.PropertyFilters{})
	assert.Contains(t, query, "FROM properties ORDER BY created_at DESC")
	assert.NotContains(t, query, "WHERE")
}
