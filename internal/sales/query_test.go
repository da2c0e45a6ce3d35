package sales

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_NoFilters(t *testing.T) {
	query, args := ListQuery(Filter{}).Build()

	assert.Equal(t, selectSales, query)
	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
}

func TestListQuery_AllFilters(t *testing.T) {
	day := time.Date(2024, time.March, 10, 17, 45, 0, 0, time.UTC)

	query, args := ListQuery(Filter{
		CustomerName: "ana",
		SaleDate:     &day,
		ProductType:  "Clothing",
	}).Build()

	assert.True(t, strings.HasSuffix(query,
		" WHERE customer_name LIKE :customer_name AND date_time >= :sale_date_start AND date_time < :sale_date_end AND product_type = :product_type"),
		"unexpected query: %s", query)

	assert.Equal(t, "%ana%", args["customer_name"])
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), args["sale_date_start"])
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), args["sale_date_end"])
	assert.Equal(t, "Clothing", args["product_type"])
}

func TestListQuery_EmptyProductTypeIsAbsent(t *testing.T) {
	query, args := ListQuery(Filter{ProductType: ""}).Build()

	assert.NotContains(t, query, "product_type =")
	assert.NotContains(t, args, "product_type")
}

func TestListQuery_SaleDateUsesUTCDay(t *testing.T) {
	// 23:30 at -03:00 is already the next day in UTC
	day := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))

	_, args := ListQuery(Filter{SaleDate: &day}).Build()

	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), args["sale_date_start"])
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), args["sale_date_end"])
}

func TestQuery_ValuesAreNeverInterpolated(t *testing.T) {
	injection := "x' OR '1'='1"

	query, args := ListQuery(Filter{CustomerName: injection, ProductType: injection}).Build()

	assert.NotContains(t, query, injection)
	assert.Equal(t, injection, args["product_type"])
	assert.Equal(t, "%"+injection+"%", args["customer_name"])
}

func TestQuery_PredicatesKeepInsertionOrder(t *testing.T) {
	q := NewQuery("SELECT 1 FROM t").
		Where("a", OpEqual, "a", 1).
		Where("b", OpLess, "b", 2)

	preds := q.Predicates()
	if assert.Len(t, preds, 2) {
		assert.Equal(t, "a", preds[0].Column)
		assert.Equal(t, OpLess, preds[1].Operator)
	}

	query, _ := q.Build()
	assert.Equal(t, "SELECT 1 FROM t WHERE a = :a AND b < :b", query)
}
