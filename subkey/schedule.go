package subkey

import "math/bits"

// Rounds is the number of subkeys derived from a master key
const Rounds = 16

const roundStride = 12345

// Schedule holds the subkeys in round order.
type Schedule [Rounds]uint64

// rotation of both halves before round r; compounded across rounds
var shifts = [Rounds]int{1, 1, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1}

// Derive expands masterKey into its 16 subkeys.
func Derive(masterKey uint64) Schedule {
	var s Schedule
	high := uint32(masterKey >> 32)
	low := uint32(masterKey)
	for r := 0; r < Rounds; r++ {
		high = rotateLeft32(high, shifts[r])
		low = rotateLeft32(low, shifts[r])
		combined := uint64(high)<<32 | uint64(low)
		s[r] = bitReverseXOR64(combined) + uint64(r)*roundStride
	}
	return s
}

func rotateLeft32(x uint32, s int) uint32 {
	return bits.RotateLeft32(x, s)
}

// bitReverseXOR64 returns v with its mirror image xored in. The result is a
// bit palindrome, so applying it twice always yields zero.
func bitReverseXOR64(v uint64) uint64 {
	return v ^ bits.Reverse64(v)
}
