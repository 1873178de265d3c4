// Package reconcile decides, field by field, whether a candidate value from a
// partial update form is a genuine change to the stored value.
//
// A candidate only counts when it is present, valid for its type and different
// from the current value. Empty strings, NaN and negative integers are treated
// as "no change requested", so a form can never clear a field.
package reconcile

import (
	"math"
	"time"
)

// ShouldUpdateString reports whether candidate is non-nil, non-empty and
// differs from current (case-sensitive).
func ShouldUpdateString(current string, candidate *string) bool {
	return candidate != nil && *candidate != "" && *candidate != current
}

// ShouldUpdateFloat reports whether candidate is non-nil, not NaN and differs
// from current.
func ShouldUpdateFloat(current float64, candidate *float64) bool {
	return candidate != nil && !math.IsNaN(*candidate) && *candidate != current
}

// ShouldUpdateInt reports whether candidate is non-nil, not negative and
// differs from current.
func ShouldUpdateInt(current int, candidate *int) bool {
	return candidate != nil && *candidate >= 0 && *candidate != current
}

// ShouldUpdateTime reports whether candidate is non-nil and differs from
// current as an instant.
func ShouldUpdateTime(current time.Time, candidate *time.Time) bool {
	return candidate != nil && !candidate.Equal(current)
}

// String assigns candidate to dst when ShouldUpdateString allows it.
func String(dst *string, candidate *string) bool {
	if !ShouldUpdateString(*dst, candidate) {
		return false
	}
	*dst = *candidate

	return true
}

// OptionalString is String for nullable columns; a nil dst compares as "".
func OptionalString(dst **string, candidate *string) bool {
	var current string
	if *dst != nil {
		current = **dst
	}
	if !ShouldUpdateString(current, candidate) {
		return false
	}
	value := *candidate
	*dst = &value

	return true
}

// Float assigns candidate to dst when ShouldUpdateFloat allows it.
func Float(dst *float64, candidate *float64) bool {
	if !ShouldUpdateFloat(*dst, candidate) {
		return false
	}
	*dst = *candidate

	return true
}

// Int assigns candidate to dst when ShouldUpdateInt allows it.
func Int(dst *int, candidate *int) bool {
	if !ShouldUpdateInt(*dst, candidate) {
		return false
	}
	*dst = *candidate

	return true
}

// Time assigns candidate to dst when ShouldUpdateTime allows it.
func Time(dst *time.Time, candidate *time.Time) bool {
	if !ShouldUpdateTime(*dst, candidate) {
		return false
	}
	*dst = *candidate

	return true
}

// Any reports whether at least one of the results is a change. Every result
// is evaluated by the caller before Any is invoked, so no field is skipped.
func Any(changes ...bool) bool {
	for _, changed := range changes {
		if changed {
			return true
		}
	}

	return false
}
