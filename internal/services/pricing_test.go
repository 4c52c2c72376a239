package services_test

import (
	"testing"

	"oasis/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestShippingFeeFor(t *testing.T) {
	// Below the free-shipping threshold the flat fee applies.
	assert.Equal(t, 99.0, services.ShippingFeeFor(998.99))
	assert.Equal(t, 99.0, services.ShippingFeeFor(0))
	assert.Equal(t, 99.0, services.ShippingFeeFor(500))

	// At or above the threshold shipping is free.
	assert.Equal(t, 0.0, services.ShippingFeeFor(999))
	assert.Equal(t, 0.0, services.ShippingFeeFor(1300))
}

func TestPromoRate(t *testing.T) {
	rate, err := services.PromoRate("WELCOME10")
	assert.NoError(t, err)
	assert.Equal(t, 0.10, rate)

	// Case-insensitive matching.
	rate, err = services.PromoRate("welcome10")
	assert.NoError(t, err)
	assert.Equal(t, 0.10, rate)

	rate, err = services.PromoRate("Organic20")
	assert.NoError(t, err)
	assert.Equal(t, 0.20, rate)

	_, err = services.PromoRate("SUMMER50")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid promo code")

	_, err = services.PromoRate("")
	assert.Error(t, err)
}

func TestQuoteFor(t *testing.T) {
	// WELCOME10 on a 1000 subtotal: 100 off, free shipping.
	quote := services.QuoteFor(1000, 0.10)
	assert.Equal(t, 1000.0, quote.Subtotal)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 900.0, quote.Total)

	// ORGANIC20 on the same subtotal.
	quote = services.QuoteFor(1000, 0.20)
	assert.Equal(t, 200.0, quote.Discount)
	assert.Equal(t, 800.0, quote.Total)

	// No promo, below threshold: fee added on top.
	quote = services.QuoteFor(500, 0)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 99.0, quote.Shipping)
	assert.Equal(t, 599.0, quote.Total)
}
