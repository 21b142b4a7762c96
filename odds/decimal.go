package odds

import (
	"math"
	"strconv"
	"strings"

	"github.com/nficca/wager/mathutil"
)

// Decimal is a decimal (European) odd: the total return per unit staked.
// Valid decimal odds are finite and at least 1.0.
type Decimal struct {
	value float64
}

// NewDecimal creates a decimal odd. Values below 1.0 or non-finite values
// are invalid.
func NewDecimal(value float64) (Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 1.0 {
		return Decimal{}, ErrInvalidOdd
	}
	return Decimal{value: value}, nil
}

// ParseDecimal parses a decimal odd from a string like "1.5".
func ParseDecimal(input string) (Decimal, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return Decimal{}, ErrInvalidOdd
	}
	return NewDecimal(value)
}

// Value returns the decimal odd as a float64.
func (d Decimal) Value() float64 {
	return d.value
}

func (d Decimal) String() string {
	return strconv.FormatFloat(d.value, 'f', -1, 64)
}

// ToDecimal returns the odd unchanged.
func (d Decimal) ToDecimal() (Decimal, error) {
	return d, nil
}

// ToFractional converts to fractional form by finding the best rational
// approximation of the profit part (value - 1) with denominator at most
// 100. Decimal odds below 1 + 1/100 have no positive approximation and
// are rejected.
func (d Decimal) ToFractional() (Fractional, error) {
	num, den := mathutil.RationalApproximation(d.value-1, mathutil.DefaultMaxDenominator)
	if num <= 0 || den <= 0 {
		return Fractional{}, ErrInvalidOdd
	}
	return NewFractional(uint32(num), uint32(den))
}

// ToMoneyline converts to moneyline form.
// Decimal 2.50 → +150, decimal 1.50 → -200.
func (d Decimal) ToMoneyline() (Moneyline, error) {
	profit := d.value - 1
	if profit == 0 {
		// -100 / 0 has no meaningful moneyline.
		return Moneyline{}, ErrInvalidOdd
	}

	var result float64
	if d.value >= 2.0 {
		result = profit * 100
	} else {
		result = -100 / profit
	}
	return NewMoneyline(int64(math.Round(result)))
}

// ImpliedProbability returns 1 / value.
func (d Decimal) ImpliedProbability() float64 {
	return 1 / d.value
}

// Payout returns the total return (stake included) on a winning bet.
func (d Decimal) Payout(stake float64) float64 {
	return stake * d.value
}

// Profit returns the winnings net of stake on a winning bet.
func (d Decimal) Profit(stake float64) float64 {
	return stake * (d.value - 1)
}
