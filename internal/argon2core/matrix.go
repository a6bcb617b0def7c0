package argon2core

import "errors"

// ErrAllocation is returned when the working memory matrix cannot be
// allocated. Callers translate it into their own error taxonomy.
var ErrAllocation = errors.New("argon2core: cannot allocate memory matrix")

// allocBlocks allocates the working matrix. Memory costs in the hundreds
// of MiB are normal for Argon2, so a refused allocation must come back as
// an error the caller can act on instead of a panic: the makeslice panic
// for out-of-range sizes is recovered here. A denied allocation leaves
// nothing to clean up.
func allocBlocks(n uint32) (blocks []Block, err error) {
	defer func() {
		if recover() != nil {
			blocks, err = nil, ErrAllocation
		}
	}()
	return make([]Block, n), nil
}

// wipeBlocks zeroes the matrix before it is released. The blocks hold
// password-derived material for the whole computation; clearing them
// bounds how long it stays in memory.
func wipeBlocks(blocks []Block) {
	for i := range blocks {
		blocks[i].Zero()
	}
}

// wipeBytes zeroes a scratch buffer holding key material.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
