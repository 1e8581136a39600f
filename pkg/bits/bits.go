// Package bits provides small helpers for working with the
// individual bits of a byte.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets or resets the bit at the given index depending on v.
func Assign(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}
