package epi

import "math"

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places, half away from zero. Used for per-case
// ratios which are typically far below 1.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Percent returns num*100/den rounded to 2 decimals. A missing or zero
// denominator yields nil, never an error and never a silent zero. A missing
// numerator also yields nil: an absent sum cannot produce a rate.
func Percent(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := Round2(*num * 100 / *den)
	return &v
}

// PerCase returns the plain ratio num/den rounded to 4 decimals, nil on a
// missing or zero denominator.
func PerCase(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := Round4(*num / *den)
	return &v
}

// Per1000 returns num*1000/den rounded to 2 decimals, nil on a missing or
// zero denominator.
func Per1000(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := Round2(*num * 1000 / *den)
	return &v
}

// SumOf adds the given optional values, treating nil as absent. It returns
// nil only when every operand is nil.
func SumOf(values ...*float64) *float64 {
	var sum float64
	seen := false
	for _, v := range values {
		if v != nil {
			sum += *v
			seen = true
		}
	}
	if !seen {
		return nil
	}
	return &sum
}

func ptr(v float64) *float64 {
	return &v
}
