package mc

import "strconv"

// Interval is a numeric range as the selector grammar writes it: a single
// value ("3"), or a bound pair where either side may be open ("2..", "..5",
// "1..3"). Pointers follow the optional-value convention: nil means the
// bound is absent.
type Interval struct {
	min   *float64
	max   *float64
	exact bool
}

// Exactly returns the single-value interval n.
func Exactly(n float64) Interval {
	return Interval{min: &n, exact: true}
}

// Between returns the closed interval min..max.
func Between(min, max float64) Interval {
	return Interval{min: &min, max: &max}
}

// AtLeast returns the half-open interval min.. .
func AtLeast(min float64) Interval {
	return Interval{min: &min}
}

// AtMost returns the half-open interval ..max .
func AtMost(max float64) Interval {
	return Interval{max: &max}
}

// IsZero reports whether the interval carries no bounds at all.
func (iv Interval) IsZero() bool { return iv.min == nil && iv.max == nil }

// String renders the interval in selector syntax. An omitted bound keeps
// the ".." marker: AtLeast(2) renders "2..".
func (iv Interval) String() string {
	if iv.exact {
		return formatNum(*iv.min)
	}
	s := ""
	if iv.min != nil {
		s += formatNum(*iv.min)
	}
	s += ".."
	if iv.max != nil {
		s += formatNum(*iv.max)
	}
	return s
}

// formatNum renders a number the way the game writes it: no exponent, no
// trailing zeros, integers without a decimal point.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
