package sales

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		dateTime string
		want     time.Time
	}{
		{`"2024-03-10T14:30:00Z"`, time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)},
		{`"2024-03-10T14:30:00-03:00"`, time.Date(2024, time.March, 10, 17, 30, 0, 0, time.UTC)},
		{`"2024-03-10T14:30:00"`, time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)},
		{`"2024-03-10 14:30:00"`, time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)},
		{`"2024-03-10"`, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		var in NewSale
		body := `{"customerName":"Ana","dateTime":` + tt.dateTime + `,"productDescription":"Dress","amount":49.9,"productType":"Clothing","paymentMethod":"Pix"}`

		require.NoError(t, json.Unmarshal([]byte(body), &in), tt.dateTime)
		assert.True(t, tt.want.Equal(in.DateTime), "%s: got %s", tt.dateTime, in.DateTime)
		assert.Equal(t, "Ana", in.CustomerName)
		assert.Equal(t, "Dress", in.ProductDescription)
		assert.True(t, decimal.RequireFromString("49.9").Equal(in.Amount))
		assert.Equal(t, "Clothing", in.ProductType)
		assert.Equal(t, "Pix", in.PaymentMethod)
	}
}

func TestNewSale_UnmarshalJSONMissingDateTime(t *testing.T) {
	var in NewSale
	require.NoError(t, json.Unmarshal([]byte(`{"customerName":"Ana","dateTime":null}`), &in))
	assert.True(t, in.DateTime.IsZero())
}

func TestNewSale_UnmarshalJSONInvalidDateTime(t *testing.T) {
	var in NewSale
	assert.Error(t, json.Unmarshal([]byte(`{"dateTime":"tomorrow"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"dateTime":20240310}`), &in))
}
