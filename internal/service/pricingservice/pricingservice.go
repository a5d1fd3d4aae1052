package pricingservice

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

var ErrInvalidPricingInput = errors.New("invalid pricing input")

// flatSurcharge is the platform fee applied to flat-priced (easyship)
// orders instead of per-item tax.
var flatSurcharge = decimal.NewFromFloat(0.05)

var hundred = decimal.NewFromInt(100)

// Service computes chargeable totals. It is pure: no store access, no
// side effects; rounding to 2 places happens only on the final amount.
type Service struct{}

func New() *Service {
	return &Service{}
}

// PerSKU prices a set of catalog line items: per item, the price plus
// shipping subtotal is taxed at the item's rate and multiplied by
// quantity.
func (s *Service) PerSKU(items []domain.OrderItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrInvalidPricingInput
	}

	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 || it.Price.LessThanOrEqual(decimal.Zero) ||
			it.Shipping.IsNegative() || it.GSTRate.IsNegative() {
			return decimal.Zero, ErrInvalidPricingInput
		}
		subtotal := it.Price.Add(it.Shipping)
		itemTotal := subtotal.Add(subtotal.Mul(it.GSTRate).Div(hundred))
		total = total.Add(itemTotal.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2), nil
}

// Flat prices an order from its flat amount and shipping pair with the
// fixed platform surcharge.
func (s *Service) Flat(orderAmount, shippingAmount decimal.Decimal) (decimal.Decimal, error) {
	if orderAmount.LessThanOrEqual(decimal.Zero) || shippingAmount.IsNegative() {
		return decimal.Zero, ErrInvalidPricingInput
	}
	subtotal := orderAmount.Add(shippingAmount)
	return subtotal.Add(subtotal.Mul(flatSurcharge)).Round(2), nil
}
