// Package mathutil provides the numeric routines the odds types are built
// on: bounded best-rational approximation and fraction simplification.
package mathutil

import "math"

const (
	// DefaultMaxDenominator is the denominator bound the odds layer uses
	// when converting a decimal odd to a fractional one.
	DefaultMaxDenominator = 100

	// maxTerms caps the continued-fraction expansion. Convergent
	// denominators grow at least as fast as the Fibonacci sequence, so 47
	// terms is far beyond any reachable int32 denominator bound.
	maxTerms = 47

	// convergenceTolerance is the residual magnitude below which the value
	// is considered exactly represented by the current convergent.
	convergenceTolerance = 1e-9
)

// RationalApproximation finds the numerator/denominator pair that best
// approximates value subject to denominator <= maxDenominator, using
// continued-fraction expansion with a semiconvergent refinement step.
//
// Example: RationalApproximation(0.5280898876, 100) → (47, 89)
//
// Degenerate inputs map to sentinel values rather than errors:
// - maxDenominator <= 0, or value is NaN → (0, 0)
// - value beyond the int32 range → (MaxInt32, 1) or (MinInt32, 1)
//
// For all other inputs the returned pair is in lowest terms, the
// denominator is in [1, maxDenominator], and the numerator carries the
// sign of value.
func RationalApproximation(value float64, maxDenominator int32) (int32, int32) {
	if maxDenominator <= 0 {
		return 0, 0
	}
	if value > math.MaxInt32-0.5 {
		return math.MaxInt32, 1
	}
	if value < math.MinInt32+0.5 {
		return math.MinInt32, 1
	}

	sign := int32(1)
	if value < 0 {
		sign = -1
	}
	value = math.Abs(value)

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0
	}

	// reciprocalResidual drives the expansion: each step peels off the
	// integer term and inverts the fractional remainder.
	reciprocalResidual := value
	cfTerm := int32(math.Floor(value))

	// Convergent recurrence state: prev is one continued-fraction step
	// behind current. Consecutive convergents are always coprime, so the
	// result never needs simplifying.
	prevNum, prevDen := int32(1), int32(0)
	curNum, curDen := cfTerm, int32(1)

	// n is the largest multiple of the current denominator that keeps the
	// next convergent within maxDenominator (and within int32 range).
	var n int32

	for term := int32(2); ; term++ {
		nextResidual := reciprocalResidual - float64(cfTerm)
		if math.Abs(nextResidual) <= convergenceTolerance {
			// The current convergent is exact to floating-point precision.
			return sign * curNum, curDen
		}

		reciprocalResidual = 1 / nextResidual
		cfTerm = int32(math.Floor(reciprocalResidual))

		n = (maxDenominator - prevDen) / curDen
		if curNum > 0 {
			// Clamp before the multiply so the numerator recurrence can
			// never overflow int32.
			if upper := (math.MaxInt32 - prevNum) / curNum; n > upper {
				n = upper
			}
		}

		if term >= maxTerms || cfTerm >= n {
			break
		}

		curNum, curDen, prevNum, prevDen =
			cfTerm*curNum+prevNum, cfTerm*curDen+prevDen, curNum, curDen
	}

	// The full next term would exceed the bound. A partial (semiconvergent)
	// step of n may still improve on the last full convergent: it always
	// does when n exceeds half the rejected term, and when n is exactly
	// half it wins only if it lands closer to the target.
	bestNum, bestDen := curNum, curDen
	lowerBound := cfTerm / 2

	if n >= lowerBound {
		if n > cfTerm {
			n = cfTerm
		}
		semiNum := n*curNum + prevNum
		semiDen := n*curDen + prevDen

		if n > lowerBound ||
			math.Abs(value-float64(semiNum)/float64(semiDen)) <
				math.Abs(value-float64(curNum)/float64(curDen)) {
			bestNum, bestDen = semiNum, semiDen
		}
	}

	return sign * bestNum, bestDen
}

// SimplifyFraction reduces num/den to lowest terms. SimplifyFraction(0, 0)
// returns (0, 0).
func SimplifyFraction(num, den uint32) (uint32, uint32) {
	d := GCD(num, den)
	if d == 0 {
		return num, den
	}
	return num / d, den / d
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
