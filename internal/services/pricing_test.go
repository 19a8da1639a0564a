// internal/services/pricing_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscount(t *testing.T) {
	tests := []struct {
		name   string
		actual string
		sell   string
		want   string
	}{
		{"twenty percent off", "100", "80", "20.00"},
		{"no markdown", "50", "50", "0.00"},
		{"fractional result", "59.99", "44.99", "25.00"},
		{"zero actual price", "0", "80", ""},
		{"negative actual price", "-10", "5", ""},
		{"non numeric actual", "free", "80", ""},
		{"non numeric sell", "100", "cheap", ""},
		{"empty inputs", "", "", ""},
		{"whitespace tolerated", " 100 ", " 75 ", "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Discount(tt.actual, tt.sell))
		})
	}
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 89.99, priceValue("89.99"))
	assert.Equal(t, 0.0, priceValue("not-a-price"))
	assert.Equal(t, 0.0, priceValue(""))
	assert.Equal(t, 12.0, priceValue(" 12 "))
}
