// internal/domain/cart/pricing.go
package cart

// Discount tiers and delivery threshold, in the smallest currency unit
const (
	HighTierThreshold int64 = 50000
	HighTierDiscount  int64 = 2500
	MidTierThreshold  int64 = 25000
	MidTierDiscount   int64 = 1200

	FreeDeliveryThreshold int64 = 15000
	DeliveryFee           int64 = 199
)

// CalculateTotals derives the pricing breakdown for a set of lines
func CalculateTotals(lines []CartLine) CartTotals {
	var totals CartTotals

	for _, line := range lines {
		totals.Subtotal += line.Price * int64(line.Quantity)
	}

	totals.Discount = discountFor(totals.Subtotal)
	totals.Delivery = deliveryFor(totals.Subtotal)
	totals.Total = totals.Subtotal - totals.Discount + totals.Delivery

	return totals
}

func discountFor(subtotal int64) int64 {
	switch {
	case subtotal > HighTierThreshold:
		return HighTierDiscount
	case subtotal > MidTierThreshold:
		return MidTierDiscount
	default:
		return 0
	}
}

// Empty carts ship for free too, so an empty cart totals zero.
func deliveryFor(subtotal int64) int64 {
	if subtotal == 0 || subtotal > FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}
