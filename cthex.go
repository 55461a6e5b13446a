package cthex

import (
	"crypto/subtle"
	"encoding/hex"
)

// ErrLength reports an attempt to decode an odd-length input. It is
// the same value used by encoding/hex.
var ErrLength = hex.ErrLength

// InvalidByteError values describe errors resulting from an invalid
// byte in a hexadecimal string. It is the same type used by
// encoding/hex.
type InvalidByteError = hex.InvalidByteError

// EncodedLen returns the length of an encoding of n source bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int {
	return hex.EncodedLen(n)
}

// DecodedLen returns the length of a decoding of n source bytes.
// Specifically, it returns n / 2.
func DecodedLen(n int) int {
	return hex.DecodedLen(n)
}

// Encode encodes src into EncodedLen(len(src)) bytes of dst. As a
// convenience, it returns the number of bytes written to dst, but
// this value is always EncodedLen(len(src)).
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = EncodeNibble(v >> 4)
		dst[j+1] = EncodeNibble(v & 0x0f)
		j += 2
	}
	return len(src) * 2
}

// EncodeToString returns the lowercase hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes src into DecodedLen(len(src)) bytes, returning the
// actual number of bytes written to dst.
//
// Decode expects that src contains only hexadecimal characters and
// that src has even length. If the input is malformed, Decode
// returns the number of bytes decoded before the error.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	// failed is 1 once a malformed character has been seen, 0
	// otherwise.
	var failed int
	// badIdx is the number of bytes written to dst when the first
	// malformed character was found.
	//
	// Only has a value if failed != 0.
	var badIdx int
	// badChar is the first malformed character.
	var badChar int
	// acc holds the high nibble between halves of a pair.
	var acc byte
	// i is the index into dst.
	var i int

	for j := 0; j < len(src); j++ {
		c := uint(src[j])
		val, ok := decodeNibble(c)

		bad := subtle.ConstantTimeByteEq(byte(ok), 0)

		// Record the position and value of the first malformed
		// character without branching on either.
		//
		// This is the constant-time equivalent of
		//
		//    if failed == 0 && bad != 0 {
		//        badIdx = i
		//        badChar = c
		//    }
		//
		badIdx = subtle.ConstantTimeSelect(failed, badIdx,
			subtle.ConstantTimeSelect(bad, i, badIdx))
		badChar = subtle.ConstantTimeSelect(failed, badChar,
			subtle.ConstantTimeSelect(bad, int(c), badChar))

		failed |= bad

		if j%2 == 0 {
			acc = byte(val) * 16
		} else {
			dst[i] = acc | byte(val)
			i++
		}
	}

	// encoding/hex checks for an invalid length after checking for
	// an invalid character, so we do that too.
	if failed != 0 {
		return badIdx, InvalidByteError(badChar)
	}
	if len(src)%2 == 1 {
		return i, ErrLength
	}
	return i, nil
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// DecodeString expects that s contains only hexadecimal characters
// and that s has even length. If the input is malformed,
// DecodeString returns the bytes decoded before the error.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := Decode(src, src)
	return src[:n], err
}
