//go:build f32

package simmer

// Float is the numeric payload type used throughout the package.
// The f32 build is for targets without hardware (or software) support for
// 64-bit floats, e.g. AVR-class microcontrollers.
type Float = float32

// floatBits matches Float's width for strconv formatting.
const floatBits = 32
