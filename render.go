package simmer

import "strconv"

// String renders the value followed by its unit symbol, e.g. "32 °F".
func (t Temperature) String() string {
	return strconv.FormatFloat(float64(t.value), 'g', -1, floatBits) + " " + t.scale.String()
}

// Append renders t exactly as String does, appending the bytes to dst
// instead of building a string. It is the formatting path for heapless
// targets: when dst has enough capacity, Append does not allocate.
func (t Temperature) Append(dst []byte) []byte {
	dst = strconv.AppendFloat(dst, float64(t.value), 'g', -1, floatBits)
	dst = append(dst, ' ')
	return append(dst, t.scale.String()...)
}
