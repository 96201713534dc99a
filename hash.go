package stylec

import (
	"encoding/binary"
	"strconv"
)

// Hash returns the lower-case base-36 digest used for every generated
// identifier. It is MurmurHash2 (32-bit, seed 1), byte-for-byte compatible
// with the murmurhash2_32_gc variant used by StyleX, so class names produced
// here match the reference tool for the same input string.
//
// Callers prepend the category prefix themselves ("x" for classes, "t" for
// themes, "--" for variables).
func Hash(s string) string {
	return strconv.FormatUint(uint64(murmur2([]byte(s), 1)), 36)
}

// murmur2 is the classic 32-bit MurmurHash2 with the standard mixing
// constants. The JS reference operates on the low byte of each UTF-16 code
// unit; for the ASCII identifiers we hash this is identical to hashing the
// raw bytes.
func murmur2(data []byte, seed uint32) uint32 {
	const m = 0x5bd1e995

	h := seed ^ uint32(len(data))

	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k *= m
		k ^= k >> 24
		k *= m
		h *= m
		h ^= k
		data = data[4:]
	}

	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}
