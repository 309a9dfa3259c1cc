package calc

import (
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/shopspring/decimal"
)

// Delivery charge policy: orders at or above the threshold ship free,
// everything below pays the flat surcharge.
var (
	FreeDeliveryThreshold = decimal.NewFromInt(500)
	DeliverySurcharge     = decimal.NewFromInt(50)
)

// TotalItems is the sum of quantities across lines.
func TotalItems(lines []models.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of line subtotals across lines.
func TotalPrice(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// DeliveryCharge returns the surcharge owed for the given subtotal.
func DeliveryCharge(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return DeliverySurcharge
}

// FinalTotal is subtotal plus delivery charge.
func FinalTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(DeliveryCharge(subtotal))
}
