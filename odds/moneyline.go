package odds

import (
	"fmt"
	"math"
	"strconv"
)

// Moneyline is a moneyline (American) odd. Positive values quote the
// profit on a 100 stake, negative values the stake needed to profit 100.
// Valid moneylines have magnitude at least 100.
type Moneyline struct {
	value int64
}

// NewMoneyline creates a moneyline odd. Magnitudes below 100 are invalid.
func NewMoneyline(value int64) (Moneyline, error) {
	if value > -100 && value < 100 {
		return Moneyline{}, ErrInvalidOdd
	}
	return Moneyline{value: value}, nil
}

// ParseMoneyline parses a moneyline odd from a string like "-200" or
// "+1200". The leading sign is optional for positive odds.
func ParseMoneyline(input string) (Moneyline, error) {
	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return Moneyline{}, ErrInvalidOdd
	}
	return NewMoneyline(value)
}

// Value returns the moneyline as a signed integer.
func (m Moneyline) Value() int64 {
	return m.value
}

func (m Moneyline) String() string {
	return fmt.Sprintf("%+d", m.value)
}

// ToDecimal converts to decimal form.
// +150 → 2.50, -150 → 1.6666666666666667.
func (m Moneyline) ToDecimal() (Decimal, error) {
	if m.value > 0 {
		return NewDecimal(float64(m.value)/100 + 1)
	}
	return NewDecimal(100/math.Abs(float64(m.value)) + 1)
}

// ToFractional converts to fractional form: v/100 for positive odds,
// 100/|v| for negative. Magnitudes beyond the uint32 range are rejected.
func (m Moneyline) ToFractional() (Fractional, error) {
	if m.value > 0 {
		if m.value > math.MaxUint32 {
			return Fractional{}, ErrInvalidOdd
		}
		return NewFractional(uint32(m.value), 100)
	}
	if m.value < -math.MaxUint32 {
		return Fractional{}, ErrInvalidOdd
	}
	return NewFractional(100, uint32(-m.value))
}

// ToMoneyline returns the odd unchanged.
func (m Moneyline) ToMoneyline() (Moneyline, error) {
	return m, nil
}

// ImpliedProbability returns the probability the moneyline implies.
// -150 → 0.6, +150 → 0.4.
func (m Moneyline) ImpliedProbability() float64 {
	if m.value > 0 {
		// Underdog: 100 / (odds + 100)
		return 100 / (float64(m.value) + 100)
	}
	// Favorite: |odds| / (|odds| + 100)
	abs := math.Abs(float64(m.value))
	return abs / (abs + 100)
}

// Payout returns the total return (stake included) on a winning bet.
func (m Moneyline) Payout(stake float64) float64 {
	return stake + m.Profit(stake)
}

// Profit returns the winnings net of stake on a winning bet.
func (m Moneyline) Profit(stake float64) float64 {
	if m.value > 0 {
		return stake * float64(m.value) / 100
	}
	return stake * 100 / math.Abs(float64(m.value))
}
