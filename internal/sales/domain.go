package sales

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product types counted separately by the statistics endpoint.
const (
	ProductTypeClothing = "Clothing"
	ProductTypeOther    = "Other"
)

func init() {
	// amounts travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Sale represents a sales transaction in the system.
type Sale struct {
	SaleID             string          `json:"saleId" db:"sale_id"`
	CustomerName       string          `json:"customerName" db:"customer_name"`
	DateTime           time.Time       `json:"dateTime" db:"date_time"`
	ProductDescription string          `json:"productDescription" db:"product_description"`
	Amount             decimal.Decimal `json:"amount" db:"amount" swaggertype:"number"`
	ProductType        string          `json:"productType" db:"product_type"`
	PaymentMethod      string          `json:"paymentMethod" db:"payment_method"`
}

// NewSale is the caller-supplied part of a sale. The ID is always assigned by the service.
type NewSale struct {
	CustomerName       string          `json:"customerName"`
	DateTime           time.Time       `json:"dateTime"`
	ProductDescription string          `json:"productDescription"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"number"`
	ProductType        string          `json:"productType"`
	PaymentMethod      string          `json:"paymentMethod"`
}

// UnmarshalJSON decodes dateTime with the same layouts accepted for query-string dates.
func (n *NewSale) UnmarshalJSON(data []byte) error {
	type plain NewSale
	aux := struct {
		*plain
		DateTime *string `json:"dateTime"`
	}{plain: (*plain)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.DateTime != nil {
		t, err := ParseTimestamp(*aux.DateTime)
		if err != nil {
			return err
		}
		n.DateTime = t
	}
	return nil
}

// Filter narrows a sales listing. Zero values mean "no filter".
type Filter struct {
	CustomerName string
	SaleDate     *time.Time
	ProductType  string
}

// Statistics is the aggregate row returned for a date range.
// Sales whose type is neither Clothing nor Other count toward the totals only.
type Statistics struct {
	TotalSales    int64           `json:"totalVendas" db:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"totalFaturamento" db:"total_revenue" swaggertype:"number"`
	TotalClothing int64           `json:"totalRoupas" db:"total_clothing"`
	TotalOther    int64           `json:"totalOutros" db:"total_other"`
}
