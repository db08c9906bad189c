package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StudioDesk/internal/domain"
)

// ParseAmount converts a decimal string such as "40.50" into minor units.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", domain.ErrValidation, s)
	}

	minor := d.Shift(2)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %q has more than two decimal places", domain.ErrValidation, s)
	}
	if !minor.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: amount %q is too large", domain.ErrValidation, s)
	}

	return minor.IntPart(), nil
}

// FormatAmount renders minor units as a decimal string.
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
