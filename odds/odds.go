// Package odds implements betting odds in decimal, fractional, and
// moneyline form, with parsing, formatting, and conversion between the
// three representations.
package odds

import (
	"errors"
	"fmt"
)

// ErrInvalidOdd is returned when a value cannot represent a valid odd, or
// when a conversion would produce one.
var ErrInvalidOdd = errors.New("invalid odd")

// Odd is any representation of a betting odd.
type Odd interface {
	fmt.Stringer

	// ToDecimal converts the odd to decimal form.
	ToDecimal() (Decimal, error)
	// ToFractional converts the odd to fractional form.
	ToFractional() (Fractional, error)
	// ToMoneyline converts the odd to moneyline (American) form.
	ToMoneyline() (Moneyline, error)

	// ImpliedProbability returns the probability the odd implies,
	// vig included.
	ImpliedProbability() float64
	// Payout returns the total return (stake included) on a winning bet.
	Payout(stake float64) float64
	// Profit returns the winnings net of stake on a winning bet.
	Profit(stake float64) float64
}

// Parse interprets input as whichever odd form it matches: moneyline
// first, then decimal, then fractional.
//
// "-200" and "+1200" parse as moneylines, "1.5" as a decimal, "1/2" as a
// fractional. A bare integer like "150" parses as a moneyline.
func Parse(input string) (Odd, error) {
	if m, err := ParseMoneyline(input); err == nil {
		return m, nil
	}
	if d, err := ParseDecimal(input); err == nil {
		return d, nil
	}
	if f, err := ParseFractional(input); err == nil {
		return f, nil
	}
	return nil, ErrInvalidOdd
}
