package argon2core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Blake2bLong is the extensible-output construction Argon2 builds on top
// of BLAKE2b, used both to expand H0 into the seed blocks and to extract
// the final tag. The requested length is prepended to the input as a
// little-endian uint32 in every case.
//
// For outputs of 64 bytes or less a single sized BLAKE2b suffices. Longer
// outputs are produced by chaining: a full 64-byte hash whose first half
// is emitted, rehashed repeatedly for the middle, with a final sized hash
// emitted whole. The 32-byte overlap between chained hashes is part of
// the construction, not an optimization.
func Blake2bLong(input []byte, outLen uint32) []byte {
	if outLen == 0 {
		return nil
	}

	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], outLen)

	if outLen <= blake2b.Size {
		h, err := blake2b.New(int(outLen), nil)
		if err != nil {
			panic("argon2core: blake2b rejected valid digest size: " + err.Error())
		}
		h.Write(prefix[:])
		h.Write(input)
		return h.Sum(nil)
	}

	output := make([]byte, outLen)

	h, _ := blake2b.New512(nil)
	h.Write(prefix[:])
	h.Write(input)
	v := h.Sum(nil)

	copied := copy(output, v[:32])
	for uint32(copied) < outLen {
		remaining := int(outLen) - copied
		if remaining > blake2b.Size {
			h.Reset()
			h.Write(v)
			v = h.Sum(v[:0])
			copied += copy(output[copied:], v[:32])
			continue
		}

		// Last link in the chain: exactly the remaining bytes.
		last, err := blake2b.New(remaining, nil)
		if err != nil {
			panic("argon2core: blake2b rejected valid digest size: " + err.Error())
		}
		last.Write(v)
		copied += copy(output[copied:], last.Sum(nil))
	}

	return output
}
