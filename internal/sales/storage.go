package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// Storage is the main interface for our sales storage layer.
type Storage interface {
	List(ctx context.Context, f Filter) ([]Sale, error)
	Insert(ctx context.Context, sale *Sale) error
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, id string) (int64, error)
	Statistics(ctx context.Context, start, end time.Time) (*Statistics, error)
}

const insertSale = `INSERT INTO sales (sale_id, customer_name, date_time, product_description, amount, product_type, payment_method)
VALUES (:sale_id, :customer_name, :date_time, :product_description, :amount, :product_type, :payment_method)`

const deleteSale = `DELETE FROM sales WHERE sale_id = :sale_id`

const salesStatistics = `SELECT
	COUNT(*) AS total_sales,
	COALESCE(SUM(amount), 0) AS total_revenue,
	COALESCE(SUM(CASE WHEN product_type = :clothing THEN 1 ELSE 0 END), 0) AS total_clothing,
	COALESCE(SUM(CASE WHEN product_type = :other THEN 1 ELSE 0 END), 0) AS total_other
FROM sales
WHERE date_time BETWEEN :start_date AND :end_date`

// SQLStorage stores sales in a relational database through sqlx.
// Statements are written with named parameters and rebound to the driver's placeholder style.
type SQLStorage struct {
	db *sqlx.DB
}

// NewSQLStorage instantiates a SQLStorage on an open database handle.
func NewSQLStorage(db *sqlx.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

// List returns every sale matching the filter, in the store's default order.
func (s *SQLStorage) List(ctx context.Context, f Filter) ([]Sale, error) {
	query, args, err := s.bind(ListQuery(f).Build())
	if err != nil {
		return nil, err
	}

	sales := make([]Sale, 0)
	if err := s.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Amount = sales[i].Amount.Round(2)
	}
	return sales, nil
}

// Insert writes all seven fields of the sale in one statement.
func (s *SQLStorage) Insert(ctx context.Context, sale *Sale) error {
	query, args, err := s.bind(insertSale, sale)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes the sale with the given ID.
func (s *SQLStorage) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := s.bind(deleteSale, map[string]any{"sale_id": id})
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Statistics aggregates the sales whose timestamp falls inclusively within [start, end].
func (s *SQLStorage) Statistics(ctx context.Context, start, end time.Time) (*Statistics, error) {
	query, args, err := s.bind(salesStatistics, map[string]any{
		"clothing":   ProductTypeClothing,
		"other":      ProductTypeOther,
		"start_date": start,
		"end_date":   end,
	})
	if err != nil {
		return nil, err
	}

	var stats Statistics
	if err := s.db.GetContext(ctx, &stats, query, args...); err != nil {
		return nil, err
	}
	// SQLite sums NUMERIC columns as floats
	stats.TotalRevenue = stats.TotalRevenue.Round(2)
	return &stats, nil
}

func (s *SQLStorage) bind(query string, arg any) (string, []any, error) {
	named, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, fmt.Errorf("binding parameters: %w", err)
	}
	return s.db.Rebind(named), args, nil
}
