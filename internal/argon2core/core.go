// Package argon2core implements the Argon2 key derivation core: the
// block compression permutation, the memory-filling engine with its three
// addressing policies, and tag extraction. It is the engine behind the
// public argon2 package and performs no parameter validation of its own;
// callers pass pre-validated, pre-rounded cost parameters.
package argon2core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Version is the Argon2 version this package implements (0x13 = 19).
const Version = 0x13

// Mode selects the addressing policy. The numeric values are fixed by the
// Argon2 wire format: they are hashed into H0 and into the address
// generator counter blocks.
type Mode uint32

const (
	ModeD  Mode = 0 // data-dependent addressing
	ModeI  Mode = 1 // data-independent addressing
	ModeID Mode = 2 // hybrid: independent for the first half of pass 0
)

// Key runs the full Argon2 computation and returns tagLength derived
// bytes.
//
// memoryKiB is the memory cost m as requested, at least 8*lanes. It is
// bound into H0 unrounded; the matrix itself holds m rounded down to a
// multiple of 4*lanes blocks (one block per KiB). Rounding after the
// seed hash keeps tags identical to the reference implementation for
// costs that are not a whole number of segments. secret (the optional
// key K) and data (the optional associated data X) may be nil.
//
// The working matrix is owned exclusively by this call: it is allocated
// on entry, wiped and released on every return path, and never shared
// between concurrent invocations.
func Key(password, salt, secret, data []byte, mode Mode, timeCost, memoryKiB, lanes, tagLength uint32) ([]byte, error) {
	h0 := initialHash(mode, timeCost, memoryKiB, lanes, tagLength, password, salt, secret, data)
	defer wipeBytes(h0[:])

	memoryBlocks := memoryKiB / (4 * lanes) * (4 * lanes)

	memory, err := allocBlocks(memoryBlocks)
	if err != nil {
		return nil, err
	}
	defer wipeBlocks(memory)

	laneLength := memoryBlocks / lanes
	initBlocks(memory, lanes, laneLength, &h0)

	fillMemory(memory, &fillConfig{
		mode:          mode,
		timeCost:      timeCost,
		lanes:         lanes,
		laneLength:    laneLength,
		segmentLength: laneLength / SyncPoints,
		totalBlocks:   memoryBlocks,
	})

	return extractTag(memory, lanes, laneLength, tagLength), nil
}

// initialHash computes H0, the 64-byte seed binding every parameter and
// every input to the computation:
//
//	H0 = BLAKE2b-512(p, T, m, t, v, y,
//	                 len(P), P, len(S), S, len(K), K, len(X), X)
//
// with all integers little-endian uint32. The result is returned in a
// 72-byte buffer so initBlocks can append the block and lane counters in
// place without copying.
//
// The inputs are streamed into the hash rather than gathered into one
// buffer, so no extra copy of the password is ever made.
func initialHash(mode Mode, timeCost, memoryKiB, lanes, tagLength uint32, password, salt, secret, data []byte) [blake2b.Size + 8]byte {
	var (
		h0  [blake2b.Size + 8]byte
		tmp [4]byte
	)

	h, _ := blake2b.New512(nil)

	writeUint32 := func(v uint32) {
		binary.LittleEndian.PutUint32(tmp[:], v)
		h.Write(tmp[:])
	}
	writeField := func(b []byte) {
		writeUint32(uint32(len(b)))
		h.Write(b)
	}

	writeUint32(lanes)
	writeUint32(tagLength)
	writeUint32(memoryKiB)
	writeUint32(timeCost)
	writeUint32(Version)
	writeUint32(uint32(mode))
	writeField(password)
	writeField(salt)
	writeField(secret)
	writeField(data)

	h.Sum(h0[:0])
	return h0
}

// initBlocks seeds the first two blocks of every lane from H0:
//
//	B[lane][0] = Blake2bLong(H0 || 0 || lane, 1024)
//	B[lane][1] = Blake2bLong(H0 || 1 || lane, 1024)
//
// Everything else is derived from these 2*lanes blocks.
func initBlocks(memory []Block, lanes, laneLength uint32, h0 *[blake2b.Size + 8]byte) {
	for lane := uint32(0); lane < lanes; lane++ {
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 0)
		seed := Blake2bLong(h0[:], BlockSize)
		memory[lane*laneLength].setBytes(seed)
		wipeBytes(seed)

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 1)
		seed = Blake2bLong(h0[:], BlockSize)
		memory[lane*laneLength+1].setBytes(seed)
		wipeBytes(seed)
	}
}

// extractTag XORs the final block of every lane into one block and runs
// it through Blake2bLong to produce the tag.
func extractTag(memory []Block, lanes, laneLength, tagLength uint32) []byte {
	final := memory[uint32(len(memory))-1]
	for lane := uint32(0); lane < lanes-1; lane++ {
		final.XOR(&memory[lane*laneLength+laneLength-1])
	}

	finalBytes := final.ToBytes()
	tag := Blake2bLong(finalBytes, tagLength)

	wipeBytes(finalBytes)
	final.Zero()
	return tag
}
