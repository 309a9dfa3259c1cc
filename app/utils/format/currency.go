package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// Rupee renders an amount for display, e.g. ₹1,299.
func Rupee(amount decimal.Decimal) string {
	return rupee.FormatMoneyDecimal(amount)
}
