package domain

import (
	"github.com/shopspring/decimal"
)

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
)

// FormatINR renders a price the way the dashboard displays it:
// ₹1.20 Cr for crores, ₹85.00 L for lakhs, plain rupees below that.
func FormatINR(price float64) string {
	p := decimal.NewFromFloat(price)
	switch {
	case p.GreaterThanOrEqual(crore):
		return "₹" + p.Div(crore).StringFixed(2) + " Cr"
	case p.GreaterThanOrEqual(lakh):
		return "₹" + p.Div(lakh).StringFixed(2) + " L"
	default:
		return "₹" + p.StringFixed(0)
	}
}
