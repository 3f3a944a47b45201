package validation

import "fmt"

// IntBetween fails when v is outside [lo, hi].
func (r *Report) IntBetween(field string, v, lo, hi int) {
	if v >= lo && v <= hi {
		return
	}
	r.Fail(Finding{
		Scope:   ScopeParameter,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", field, lo, hi),
		Got:     v,
		Want:    fmt.Sprintf("%d-%d", lo, hi),
	})
}

// IntAtLeast fails when v < lo.
func (r *Report) IntAtLeast(field string, v, lo int) {
	if v >= lo {
		return
	}
	r.Fail(Finding{
		Scope:   ScopeParameter,
		Field:   field,
		Message: fmt.Sprintf("%s must be at least %d", field, lo),
		Got:     v,
		Want:    fmt.Sprintf(">= %d", lo),
	})
}

// FloatBetween fails when v is outside [lo, hi]. NaN always fails.
func (r *Report) FloatBetween(field string, v, lo, hi float64) {
	if v >= lo && v <= hi {
		return
	}
	r.Fail(Finding{
		Scope:   ScopeParameter,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %g and %g", field, lo, hi),
		Got:     v,
		Want:    fmt.Sprintf("%g-%g", lo, hi),
	})
}

// NonNegative fails when v < 0 or NaN.
func (r *Report) NonNegative(field string, v float64) {
	if v >= 0 {
		return
	}
	r.Fail(Finding{
		Scope:   ScopeParameter,
		Field:   field,
		Message: field + " must be non-negative",
		Got:     v,
		Want:    ">= 0",
	})
}
