package services

import (
	"fmt"
	"strings"
)

// Shipping fee policy: a flat fee, waived once the subtotal reaches the
// free-shipping threshold.
const (
	ShippingFee           = 99.0
	FreeShippingThreshold = 999.0
)

// Promo codes are matched case-insensitively and apply a fixed
// percentage discount to the subtotal. No expiry, no stacking.
var promoRates = map[string]float64{
	"welcome10": 0.10,
	"organic20": 0.20,
}

// ShippingFeeFor returns the shipping fee for a subtotal.
func ShippingFeeFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// PromoRate resolves a promo code to its discount rate.
func PromoRate(code string) (float64, error) {
	rate, ok := promoRates[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return 0, fmt.Errorf("invalid promo code")
	}
	return rate, nil
}

// OrderQuote is the priced breakdown of a cart at checkout.
type OrderQuote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// QuoteFor prices a subtotal under the given discount rate.
// Total = subtotal - discount + shipping.
func QuoteFor(subtotal, discountRate float64) OrderQuote {
	discount := subtotal * discountRate
	shipping := ShippingFeeFor(subtotal)
	return OrderQuote{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal - discount + shipping,
	}
}
