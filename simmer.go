// Package simmer provides a temperature value type that keeps its unit.
//
// A Temperature wraps a single floating point reading tagged with a Scale
// (Fahrenheit, Celsius, or Kelvin) and converts between scales without the
// caller juggling formulas. Temperatures are plain values: copy them, pass
// them, compare them. Nothing here allocates.
//
// CheckedTemperature layers a physical-validity guarantee on top: a checked
// value is always finite and at or above absolute zero. Build with
// -tags nochecked to drop it entirely.
//
// Targets without 64-bit float support should build with -tags f32, which
// switches every payload in the package to float32.
package simmer

import "math"

// kelvinOffset is the gap between 0 C and 0 K.
const kelvinOffset = 273.15

// Scale identifies the unit system a Temperature is expressed in.
type Scale uint8

const (
	Fahrenheit Scale = iota
	Celsius
	Kelvin
)

// String returns the unit symbol, e.g. "°C".
func (s Scale) String() string {
	switch s {
	case Fahrenheit:
		return "°F"
	case Celsius:
		return "°C"
	case Kelvin:
		return "K"
	}
	return "?"
}

// Temperature is a reading tagged with the scale it was taken in.
//
// No validity check is made on construction; a Temperature will happily
// hold NaN or a value below absolute zero. Use CheckedTemperature when
// that matters.
type Temperature struct {
	value Float
	scale Scale
}

// New returns a Temperature holding value in the given scale.
func New(value Float, scale Scale) Temperature {
	return Temperature{value: value, scale: scale}
}

// F returns a Temperature in Fahrenheit.
func F(value Float) Temperature { return New(value, Fahrenheit) }

// C returns a Temperature in Celsius.
func C(value Float) Temperature { return New(value, Celsius) }

// K returns a Temperature in Kelvin.
func K(value Float) Temperature { return New(value, Kelvin) }

// Value returns the numeric payload, discarding the scale tag.
func (t Temperature) Value() Float { return t.value }

// Scale returns the scale tag.
func (t Temperature) Scale() Scale { return t.scale }

// ToFahrenheit returns t expressed in Fahrenheit.
// Converting a Fahrenheit value is the identity.
func (t Temperature) ToFahrenheit() Temperature {
	switch t.scale {
	case Celsius:
		return F(t.value*9/5 + 32)
	case Kelvin:
		return F((t.value-kelvinOffset)*9/5 + 32)
	}
	return t
}

// ToCelsius returns t expressed in Celsius.
// Converting a Celsius value is the identity.
func (t Temperature) ToCelsius() Temperature {
	switch t.scale {
	case Fahrenheit:
		return C((t.value - 32) * 5 / 9)
	case Kelvin:
		return C(t.value - kelvinOffset)
	}
	return t
}

// ToKelvin returns t expressed in Kelvin.
// Converting a Kelvin value is the identity.
func (t Temperature) ToKelvin() Temperature {
	switch t.scale {
	case Fahrenheit:
		return K((t.value-32)*5/9 + kelvinOffset)
	case Celsius:
		return K(t.value + kelvinOffset)
	}
	return t
}

// to converts t into an arbitrary scale.
func (t Temperature) to(s Scale) Temperature {
	switch s {
	case Fahrenheit:
		return t.ToFahrenheit()
	case Celsius:
		return t.ToCelsius()
	}
	return t.ToKelvin()
}

// kelvins is the payload of t normalized to Kelvin, the common scale for
// comparison and validity checks.
func (t Temperature) kelvins() Float {
	switch t.scale {
	case Fahrenheit:
		return (t.value-32)*5/9 + kelvinOffset
	case Celsius:
		return t.value + kelvinOffset
	}
	return t.value
}

// Add returns t plus o. o is converted into t's scale first, and the
// result keeps t's scale.
func (t Temperature) Add(o Temperature) Temperature {
	return New(t.value+o.to(t.scale).value, t.scale)
}

// Sub returns t minus o. o is converted into t's scale first, and the
// result keeps t's scale.
func (t Temperature) Sub(o Temperature) Temperature {
	return New(t.value-o.to(t.scale).value, t.scale)
}

// Mul returns t with its payload multiplied by x.
func (t Temperature) Mul(x Float) Temperature {
	return New(t.value*x, t.scale)
}

// Div returns t with its payload divided by x. Division by zero follows
// float semantics here; CheckedTemperature.Div rejects it.
func (t Temperature) Div(x Float) Temperature {
	return New(t.value/x, t.scale)
}

// Eq reports whether t and o are the same temperature once both are
// normalized to Kelvin. Equality is exact float equality, no epsilon.
func (t Temperature) Eq(o Temperature) bool {
	return t.kelvins() == o.kelvins()
}

// Less reports whether t is colder than o, comparing Kelvin-normalized
// values.
func (t Temperature) Less(o Temperature) bool {
	return t.kelvins() < o.kelvins()
}

// Compare returns -1 if t is colder than o, 1 if warmer, and 0 otherwise.
// NaN payloads are neither colder nor warmer, so they compare as 0.
func (t Temperature) Compare(o Temperature) int {
	a, b := t.kelvins(), o.kelvins()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsNaN reports whether the payload is NaN.
func (t Temperature) IsNaN() bool {
	return math.IsNaN(float64(t.value))
}

// BelowAbsoluteZero reports whether t is below 0 K.
func (t Temperature) BelowAbsoluteZero() bool {
	return t.kelvins() < 0
}
