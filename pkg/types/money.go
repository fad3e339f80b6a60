package types

import "github.com/shopspring/decimal"

// FormatCents renders integer minor units as a dollar string, e.g. 123450 -> "$1234.50".
// All internal arithmetic stays in cents; formatting happens once at the edge.
func FormatCents(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
