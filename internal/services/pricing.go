// internal/services/pricing.go
package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Discount derives the percentage discount from actual and sell price
// strings, formatted with two decimals. Unparseable input or a non-positive
// actual price yields the empty string, which callers treat as "no discount".
func Discount(actualPrice, sellPrice string) string {
	actual, err := strconv.ParseFloat(strings.TrimSpace(actualPrice), 64)
	if err != nil || actual <= 0 {
		return ""
	}
	sell, err := strconv.ParseFloat(strings.TrimSpace(sellPrice), 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%.2f", (actual-sell)/actual*100)
}

// priceValue mirrors the lenient numeric coercion used for order totals:
// anything unparseable counts as zero instead of failing the computation.
func priceValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
