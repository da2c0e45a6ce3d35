package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingDateRange is returned when a statistics request lacks startDate or endDate.
var ErrMissingDateRange = errors.New("startDate and endDate query parameters are required")

// timestamp layouts accepted for dates coming from query strings
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Service provides high-level sales management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ListSales returns the sales matching the optional filters. An empty productType is
// the same as no productType.
func (s *Service) ListSales(ctx context.Context, customerName, saleDate, productType string) ([]Sale, error) {
	filter := Filter{
		CustomerName: customerName,
		ProductType:  productType,
	}
	if saleDate != "" {
		day, err := ParseTimestamp(saleDate)
		if err != nil {
			return nil, err
		}
		filter.SaleDate = &day
	}

	sales, err := s.storage.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list sales",
			zap.String("customer_name_filter", customerName),
			zap.String("sale_date_filter", saleDate),
			zap.String("product_type_filter", productType),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sales listed",
		zap.String("customer_name_filter", customerName),
		zap.String("sale_date_filter", saleDate),
		zap.String("product_type_filter", productType),
		zap.Int("results_count", len(sales)),
	)
	return sales, nil
}

// CreateSale stores a new sale under a freshly generated ID and returns that ID.
func (s *Service) CreateSale(ctx context.Context, in NewSale) (string, error) {
	sale := &Sale{
		SaleID:             uuid.NewString(),
		CustomerName:       in.CustomerName,
		DateTime:           in.DateTime.UTC(),
		ProductDescription: in.ProductDescription,
		Amount:             in.Amount.Round(2),
		ProductType:        in.ProductType,
		PaymentMethod:      in.PaymentMethod,
	}

	if err := s.storage.Insert(ctx, sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.SaleID), zap.Error(err))
		return "", err
	}

	s.logger.Info("sale created", zap.String("sale_id", sale.SaleID), zap.Any("sale", sale))
	return sale.SaleID, nil
}

// DeleteSale permanently removes a sale. Returns ErrNotFound if nothing was deleted.
func (s *Service) DeleteSale(ctx context.Context, saleID string) error {
	affected, err := s.storage.Delete(ctx, saleID)
	if err != nil {
		s.logger.Error("failed to delete sale", zap.String("sale_id", saleID), zap.Error(err))
		return err
	}
	if affected == 0 {
		s.logger.Warn("sale to delete not found", zap.String("sale_id", saleID))
		return ErrNotFound
	}

	s.logger.Info("sale deleted", zap.String("sale_id", saleID))
	return nil
}

// SalesStatistics aggregates the sales between startDate and endDate, both inclusive.
// Both bounds are required and are checked before the store is queried.
func (s *Service) SalesStatistics(ctx context.Context, startDate, endDate string) (*Statistics, error) {
	if startDate == "" || endDate == "" {
		return nil, ErrMissingDateRange
	}

	start, err := ParseTimestamp(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimestamp(endDate)
	if err != nil {
		return nil, err
	}

	stats, err := s.storage.Statistics(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to compute sales statistics",
			zap.Time("start_date", start),
			zap.Time("end_date", end),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sales statistics computed",
		zap.Time("start_date", start),
		zap.Time("end_date", end),
		zap.Any("statistics", stats),
	)
	return stats, nil
}

// ParseTimestamp parses a date or timestamp from a query string. Values without a zone are UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value %q", value)
}
