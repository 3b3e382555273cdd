//go:build !nochecked

package simmer

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by CheckedTemperature. Call sites wrap these
// with the offending value; test with errors.Is.
var (
	ErrBelowAbsoluteZero = errors.New("temperature below absolute zero")
	ErrNotFinite         = errors.New("temperature is not finite")
	ErrOutOfBounds       = errors.New("temperature out of bounds")
	ErrInvalidBound      = errors.New("invalid bound")
	ErrDivisionByZero    = errors.New("division by zero")
)

// bounds are caller-set limits on a checked value's payload, interpreted in
// the scale of whatever value they are checked against. Infinite bounds
// mean unbounded, the default.
type bounds struct {
	lower Float
	upper Float
}

func unbounded() bounds {
	return bounds{lower: Float(math.Inf(-1)), upper: Float(math.Inf(1))}
}

// convert re-expresses finite bounds in a new scale. Infinite bounds are
// left alone.
func (b bounds) convert(from, to Scale) bounds {
	if !math.IsInf(float64(b.lower), -1) {
		b.lower = New(b.lower, from).to(to).value
	}
	if !math.IsInf(float64(b.upper), 1) {
		b.upper = New(b.upper, from).to(to).value
	}
	return b
}

// CheckedTemperature is a Temperature that is always physically possible:
// its Kelvin-normalized value is finite and at or above absolute zero.
// Every operation that would replace the inner value re-validates the
// result and returns an error instead of producing a bad reading, so an
// invalid CheckedTemperature is never observable.
//
// Callers may additionally set their own lower and upper limits, e.g. the
// working range of a thermocouple; those apply to subsequent operations.
//
// Beware that floating point rounding can make a value that is below 0 K
// by less than a bit land exactly on 0 K and pass validation.
//
// Operations return a new value rather than mutating in place, so checked
// temperatures are as freely copyable as unchecked ones.
type CheckedTemperature struct {
	temp   Temperature
	bounds bounds
}

// NewChecked wraps t after validating it. It fails with
// ErrBelowAbsoluteZero for a negative-Kelvin value and ErrNotFinite for a
// NaN or infinite one.
func NewChecked(t Temperature) (CheckedTemperature, error) {
	c := CheckedTemperature{temp: t, bounds: unbounded()}
	if err := c.validate(t); err != nil {
		return CheckedTemperature{}, err
	}
	return c, nil
}

// validate checks t against the physical invariant and the caller bounds.
func (c CheckedTemperature) validate(t Temperature) error {
	k := float64(t.kelvins())
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: %v", ErrNotFinite, t)
	}
	if k < 0 {
		return fmt.Errorf("%w: %v", ErrBelowAbsoluteZero, t)
	}
	if t.value > c.bounds.upper {
		return fmt.Errorf("%w: %v above upper bound %g", ErrOutOfBounds, t, c.bounds.upper)
	}
	if t.value < c.bounds.lower {
		return fmt.Errorf("%w: %v below lower bound %g", ErrOutOfBounds, t, c.bounds.lower)
	}
	return nil
}

// replace validates t and returns a copy of c holding it.
func (c CheckedTemperature) replace(t Temperature) (CheckedTemperature, error) {
	if err := c.validate(t); err != nil {
		return CheckedTemperature{}, err
	}
	c.temp = t
	return c, nil
}

// convert moves the inner value and any finite bounds to a new scale,
// re-validating the result.
func (c CheckedTemperature) convert(s Scale) (CheckedTemperature, error) {
	if c.temp.scale == s {
		return c, nil
	}
	c.bounds = c.bounds.convert(c.temp.scale, s)
	return c.replace(c.temp.to(s))
}

// ToFahrenheit returns c expressed in Fahrenheit. Conversion preserves the
// invariant for a valid input, but the result is re-validated anyway.
func (c CheckedTemperature) ToFahrenheit() (CheckedTemperature, error) {
	return c.convert(Fahrenheit)
}

// ToCelsius returns c expressed in Celsius.
func (c CheckedTemperature) ToCelsius() (CheckedTemperature, error) {
	return c.convert(Celsius)
}

// ToKelvin returns c expressed in Kelvin.
func (c CheckedTemperature) ToKelvin() (CheckedTemperature, error) {
	return c.convert(Kelvin)
}

// Add returns c plus t, failing if the sum is no longer physical or falls
// outside the bounds. t is converted into c's scale, as with Temperature.
func (c CheckedTemperature) Add(t Temperature) (CheckedTemperature, error) {
	return c.replace(c.temp.Add(t))
}

// Sub returns c minus t, failing if the difference is no longer physical
// or falls outside the bounds.
func (c CheckedTemperature) Sub(t Temperature) (CheckedTemperature, error) {
	return c.replace(c.temp.Sub(t))
}

// Mul returns c with its payload multiplied by x, re-validated.
func (c CheckedTemperature) Mul(x Float) (CheckedTemperature, error) {
	return c.replace(c.temp.Mul(x))
}

// Div returns c with its payload divided by x, re-validated. Dividing by
// zero fails with ErrDivisionByZero.
func (c CheckedTemperature) Div(x Float) (CheckedTemperature, error) {
	if x == 0 {
		return CheckedTemperature{}, ErrDivisionByZero
	}
	return c.replace(c.temp.Div(x))
}

// WithTemperature returns c holding t instead of its current value, after
// validating t. The bounds are interpreted in t's scale.
func (c CheckedTemperature) WithTemperature(t Temperature) (CheckedTemperature, error) {
	return c.replace(t)
}

// WithLowerBound returns c with its lower limit set. The bound must not be
// NaN or above the upper limit. Bounds apply to subsequent operations, not
// to the value already held.
func (c CheckedTemperature) WithLowerBound(v Float) (CheckedTemperature, error) {
	if math.IsNaN(float64(v)) || v > c.bounds.upper {
		return CheckedTemperature{}, fmt.Errorf("%w: lower bound %g", ErrInvalidBound, v)
	}
	c.bounds.lower = v
	return c, nil
}

// WithUpperBound returns c with its upper limit set. The bound must not be
// NaN or below the lower limit.
func (c CheckedTemperature) WithUpperBound(v Float) (CheckedTemperature, error) {
	if math.IsNaN(float64(v)) || v < c.bounds.lower {
		return CheckedTemperature{}, fmt.Errorf("%w: upper bound %g", ErrInvalidBound, v)
	}
	c.bounds.upper = v
	return c, nil
}

// WithBounds returns c with both limits set.
func (c CheckedTemperature) WithBounds(lower, upper Float) (CheckedTemperature, error) {
	next, err := c.WithLowerBound(lower)
	if err != nil {
		return CheckedTemperature{}, err
	}
	return next.WithUpperBound(upper)
}

// Bounds returns the lower and upper limits tagged with the value's scale.
func (c CheckedTemperature) Bounds() (lower, upper Temperature) {
	return New(c.bounds.lower, c.temp.scale), New(c.bounds.upper, c.temp.scale)
}

// Unchecked returns the inner Temperature, dropping the validation layer.
func (c CheckedTemperature) Unchecked() Temperature { return c.temp }

// Value returns the numeric payload. The value is already known valid, so
// there is nothing to check.
func (c CheckedTemperature) Value() Float { return c.temp.value }

// Scale returns the scale tag of the inner value.
func (c CheckedTemperature) Scale() Scale { return c.temp.scale }

// String renders like Temperature.String.
func (c CheckedTemperature) String() string { return c.temp.String() }

// Append renders like Temperature.Append.
func (c CheckedTemperature) Append(dst []byte) []byte { return c.temp.Append(dst) }
