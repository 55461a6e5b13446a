package cthex

// DecodeNibble converts the ASCII hexadecimal character c to its
// 4-bit value.
//
// '0' through '9' decode to 0 through 9. 'A' through 'F' and 'a'
// through 'f' both decode to 10 through 15. Every other byte
// returns InvalidByteError.
//
// The value is computed from two 0/1 range predicates and two
// candidate offsets combined with multiplies and adds, so the work
// done does not depend on c. The only branch is the validity check
// on the combined predicates, taken after the arithmetic completes.
func DecodeNibble(c byte) (byte, error) {
	val, ok := decodeNibble(uint(c))
	if ok == 0 {
		return 0, InvalidByteError(c)
	}
	return byte(val), nil
}

// EncodeNibble converts the 4-bit value v to its lowercase
// hexadecimal character.
//
// v must be in [0, 15].
func EncodeNibble(v byte) byte {
	b := uint(v)

	// The subtraction borrows exactly when b > 9, making the mask
	// all ones for the letters and zero for the digits. 39 is the
	// gap between the two alphabets: 'a'-10 - '0'.
	return byte(b + '0' + ((9-b)>>8)&39)
}

// decodeNibble converts the hexadecimal character c to its 4-bit
// binary value.
//
// ok is 0xff if c is a hexadecimal character and 0x00 otherwise.
// When ok is 0x00, val is 0.
func decodeNibble(c uint) (val, ok uint) {
	// Is c in '0' ... '9'?
	//
	// Each subtraction borrows into the high bits exactly when c
	// falls outside the range on that side, so the OR of the two,
	// shifted down and inverted, is 1 for every digit and 0 for
	// everything else.
	num := ((c-'0')|('9'-c))>>8&1 ^ 1

	// Is c in 'A' ... 'F' or 'a' ... 'f'?
	//
	// The lowercase letters differ from uppercase only in bit 5,
	// so setting it folds both cases onto 'a' ... 'f'. The range
	// check is then the same borrow trick as above.
	l := c | 0x20
	alpha := ((l-'a')|('f'-l))>>8&1 ^ 1

	// At most one predicate is 1. The digit offset is the low four
	// bits of the character ('0' is 0x30, so '7'&15 == 7). The
	// letter offset is the low three bits plus 9 ('a' is 0x61 and
	// 'A' is 0x41, so 'c'&7 + 9 == 12). Multiplying each offset by
	// its predicate and summing selects whichever is live, or 0
	// when the character is invalid.
	val = num*(c&15) + alpha*(c&7+9)

	// 0 -> 0x00, 1 -> 0xff.
	ok = -(num | alpha) & 0xff
	return val, ok
}

// validNibble reports, in constant time, whether c is a hexadecimal
// character.
func validNibble(c byte) bool {
	_, ok := decodeNibble(uint(c))
	return ok != 0
}
