package app

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses user-entered money like "300", "$300" or "1,200.50".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
