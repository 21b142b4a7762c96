package odds

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nficca/wager/mathutil"
)

// Fractional is a fractional (British) odd: profit of num per den staked.
// Both parts are positive and the pair is always stored in lowest terms.
type Fractional struct {
	num, den uint32
}

// NewFractional creates a fractional odd, reducing it to lowest terms.
// A zero numerator or denominator is invalid.
func NewFractional(num, den uint32) (Fractional, error) {
	if num == 0 || den == 0 {
		return Fractional{}, ErrInvalidOdd
	}
	num, den = mathutil.SimplifyFraction(num, den)
	return Fractional{num: num, den: den}, nil
}

// ParseFractional parses a fractional odd from a string like "1/2".
// Whitespace around either part is ignored.
func ParseFractional(input string) (Fractional, error) {
	parts := strings.Split(input, "/")
	if len(parts) < 2 {
		return Fractional{}, ErrInvalidOdd
	}

	num, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Fractional{}, ErrInvalidOdd
	}
	den, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Fractional{}, ErrInvalidOdd
	}

	return NewFractional(uint32(num), uint32(den))
}

// Numerator returns the numerator in lowest terms.
func (f Fractional) Numerator() uint32 {
	return f.num
}

// Denominator returns the denominator in lowest terms.
func (f Fractional) Denominator() uint32 {
	return f.den
}

func (f Fractional) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// ToDecimal converts to decimal form: 1 + num/den.
func (f Fractional) ToDecimal() (Decimal, error) {
	return NewDecimal(1 + float64(f.num)/float64(f.den))
}

// ToFractional returns the odd unchanged.
func (f Fractional) ToFractional() (Fractional, error) {
	return f, nil
}

// ToMoneyline converts to moneyline form.
// 1/2 → -200, 2/1 → +200, 7/9 → -129.
func (f Fractional) ToMoneyline() (Moneyline, error) {
	num := float64(f.num)
	den := float64(f.den)

	var result float64
	if num >= den {
		result = num / den * 100
	} else {
		result = -100 * den / num
	}
	return NewMoneyline(int64(math.Round(result)))
}

// ImpliedProbability returns den / (num + den).
func (f Fractional) ImpliedProbability() float64 {
	return float64(f.den) / (float64(f.num) + float64(f.den))
}

// Payout returns the total return (stake included) on a winning bet.
func (f Fractional) Payout(stake float64) float64 {
	return stake + f.Profit(stake)
}

// Profit returns the winnings net of stake on a winning bet.
func (f Fractional) Profit(stake float64) float64 {
	return stake * float64(f.num) / float64(f.den)
}
