package sales

import (
	"strings"
	"time"
)

// Operator is a comparison allowed in a predicate.
type Operator string

const (
	OpEqual        Operator = "="
	OpLike         Operator = "LIKE"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
)

// Column names of the sales table.
const (
	colCustomerName = "customer_name"
	colDateTime     = "date_time"
	colProductType  = "product_type"
)

const selectSales = `SELECT sale_id, customer_name, date_time, product_description, amount, product_type, payment_method FROM sales`

// Predicate is a single "column op :param" condition. Value is only ever bound, never
// written into the statement text.
type Predicate struct {
	Column   string
	Operator Operator
	Param    string
	Value    any
}

// Query is a base statement plus AND-joined predicates.
type Query struct {
	base       string
	predicates []Predicate
}

// NewQuery starts a query from a base statement.
func NewQuery(base string) *Query {
	return &Query{base: base}
}

// Where appends a predicate.
func (q *Query) Where(column string, op Operator, param string, value any) *Query {
	q.predicates = append(q.predicates, Predicate{
		Column:   column,
		Operator: op,
		Param:    param,
		Value:    value,
	})
	return q
}

// Predicates returns the predicates in the order they were added.
func (q *Query) Predicates() []Predicate {
	return q.predicates
}

// Build renders the statement with named parameters and returns their bindings.
func (q *Query) Build() (string, map[string]any) {
	args := make(map[string]any, len(q.predicates))
	if len(q.predicates) == 0 {
		return q.base, args
	}

	conditions := make([]string, 0, len(q.predicates))
	for _, p := range q.predicates {
		conditions = append(conditions, p.Column+" "+string(p.Operator)+" :"+p.Param)
		args[p.Param] = p.Value
	}

	return q.base + " WHERE " + strings.Join(conditions, " AND "), args
}

// ListQuery builds the sales listing query for the given filter.
func ListQuery(f Filter) *Query {
	q := NewQuery(selectSales)

	if f.CustomerName != "" {
		q.Where(colCustomerName, OpLike, "customer_name", "%"+f.CustomerName+"%")
	}
	if f.SaleDate != nil {
		// the whole UTC calendar day, time of day ignored
		y, m, d := f.SaleDate.UTC().Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		q.Where(colDateTime, OpGreaterEqual, "sale_date_start", start)
		q.Where(colDateTime, OpLess, "sale_date_end", start.AddDate(0, 0, 1))
	}
	if f.ProductType != "" {
		q.Where(colProductType, OpEqual, "product_type", f.ProductType)
	}

	return q
}
