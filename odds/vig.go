package odds

import "math"

// RemoveVig removes the vig/juice from a two-way market.
// Returns the true probabilities that sum to 1.0.
//
// Method: multiplicative vig removal (proportional)
// trueProbA = impliedA / (impliedA + impliedB)
// trueProbB = impliedB / (impliedA + impliedB)
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	if impliedA <= 0 || impliedB <= 0 {
		return 0, 0
	}

	total := impliedA + impliedB
	if total <= 0 {
		return 0, 0
	}

	return impliedA / total, impliedB / total
}

// RemoveVigPower removes vig using the power method.
// This accounts for the favorite-longshot bias: longshots are
// systematically overbet. Finds k such that p1^k + p2^k = 1, then:
// - trueProb1 = p1^k
// - trueProb2 = p2^k
// This deflates longshot probabilities more than favorites.
func RemoveVigPower(impliedA, impliedB float64) (float64, float64) {
	if impliedA <= 0 || impliedB <= 0 {
		return 0, 0
	}

	// Edge case: if probabilities already sum to 1, return as-is
	sum := impliedA + impliedB
	if math.Abs(sum-1.0) < 1e-9 {
		return impliedA, impliedB
	}

	k := findPowerExponent(impliedA, impliedB)

	return math.Pow(impliedA, k), math.Pow(impliedB, k)
}

// findPowerExponent finds k such that p1^k + p2^k = 1 using bisection.
// For implied probabilities (0 < p < 1), higher k reduces p^k, so
// overround markets (sum > 1) end up with k > 1 and underround markets
// with k < 1.
func findPowerExponent(p1, p2 float64) float64 {
	const (
		tolerance = 1e-9
		maxIters  = 100
	)

	low, high := 0.01, 10.0

	for i := 0; i < maxIters; i++ {
		mid := (low + high) / 2
		currentSum := math.Pow(p1, mid) + math.Pow(p2, mid)

		if math.Abs(currentSum-1.0) < tolerance {
			return mid
		}

		if currentSum > 1 {
			low = mid
		} else {
			high = mid
		}
	}

	return (low + high) / 2
}

// RemoveVigFromOdds removes the vig from a two-way market quoted in any
// odd form, proportionally.
func RemoveVigFromOdds(a, b Odd) (float64, float64) {
	return RemoveVig(a.ImpliedProbability(), b.ImpliedProbability())
}
