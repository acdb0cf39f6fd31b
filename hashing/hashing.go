// hashing/hashing.go
// Package hashing produces the content hashes used to compare benchmark
// test vectors across implementations. Numeric arrays are canonicalized to
// little-endian unsigned 32-bit words before hashing so that two
// implementations hashing the same logical sequence always agree.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Sequence is implemented by array-like values that can flatten themselves
// into a plain sequence of 32-bit words. Adapters for concrete numeric
// containers implement this instead of the library probing value shapes at
// runtime.
type Sequence interface {
	Uint32s() []uint32
}

// ComputeHash returns the lowercase hex SHA-256 digest of data.
func ComputeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ComputeArrayHash canonicalizes every element to an unsigned 32-bit
// integer, packs the sequence as raw little-endian bytes, and hashes the
// result. Out-of-range and negative elements wrap, matching fixed-width
// unsigned arithmetic.
func ComputeArrayHash[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](values []T) string {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return ComputeHash(buf)
}

// ComputeSequenceHash hashes an array-like value through its Sequence
// conversion. Equivalent to ComputeArrayHash(seq.Uint32s()).
func ComputeSequenceHash(seq Sequence) string {
	return ComputeArrayHash(seq.Uint32s())
}
