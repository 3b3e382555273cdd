//go:build !f32

package simmer

// Float is the numeric payload type used throughout the package.
type Float = float64

// floatBits matches Float's width for strconv formatting.
const floatBits = 64
