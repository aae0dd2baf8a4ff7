package celengan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Rupiah is a whole-rupiah amount. The currency has no minor unit in
// practice, so one unit of Rupiah is exactly one rupiah.
type Rupiah int64

// idr is the display currency. Rupiah amounts are conventionally written
// without decimal digits, so the ISO fraction is dropped.
var idr = func() money.Currency {
	c := *money.New(0, money.IDR).Currency()
	c.Fraction = 0
	return c
}()

// String formats the amount the Indonesian way, e.g. "Rp5.000".
func (r Rupiah) String() string {
	return idr.Formatter().Format(int64(r))
}

// ParseRupiah parses a user-entered amount. It tolerates an "Rp" prefix,
// spaces, and "." or "," thousand separators, e.g. "Rp 2.500.000".
func ParseRupiah(s string) (Rupiah, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "Rp")
	cleaned = strings.TrimPrefix(cleaned, "rp")
	cleaned = strings.Map(func(c rune) rune {
		if c == '.' || c == ',' || c == ' ' {
			return -1
		}
		return c
	}, cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Rupiah(v), nil
}

// withdrawCapRate is the fraction of a target's balance that a single
// spend may take.
var withdrawCapRate = decimal.NewFromFloat(0.3)

// WithdrawCap returns the largest amount that one spend may take from a
// target holding balance, rounded down to a whole rupiah.
func WithdrawCap(balance Rupiah) Rupiah {
	limit := decimal.NewFromInt(int64(balance)).Mul(withdrawCapRate).Floor()
	return Rupiah(limit.IntPart())
}
