package argon2core

// permute applies the Argon2 block permutation P to a block in place.
// The block is viewed as an 8x8 matrix of 16-byte registers (two uint64
// each): the BLAKE2b round runs first over every row, then over every
// column. Together with fBlaMka this is the whole compression primitive.
func permute(b *Block) {
	// Row pass: each row is 16 consecutive words.
	for i := 0; i < QWordsInBlock; i += 16 {
		gRound(b[i : i+16])
	}

	// Column pass: each column gathers one register pair from every row.
	var v [16]uint64
	for i := 0; i < QWordsInBlock/8; i += 2 {
		for row := 0; row < 8; row++ {
			v[2*row] = b[16*row+i]
			v[2*row+1] = b[16*row+i+1]
		}
		gRound(v[:])
		for row := 0; row < 8; row++ {
			b[16*row+i] = v[2*row]
			b[16*row+i+1] = v[2*row+1]
		}
	}
}

// fillBlock computes one block of the memory matrix:
//
//	next = P(prev XOR ref) XOR prev XOR ref
//
// With withXOR set (every pass after the first) the existing contents of
// next are folded into both the feedback term and the result, so later
// passes refine the block instead of overwriting it:
//
//	next = P(prev XOR ref) XOR prev XOR ref XOR next
//
// prev and ref are never modified. next may alias ref; the inputs are
// copied before the permutation runs.
func fillBlock(prev, ref, next *Block, withXOR bool) {
	var r, tmp Block

	r = *ref
	r.XOR(prev)

	tmp = r
	if withXOR {
		tmp.XOR(next)
	}

	permute(&r)

	r.XOR(&tmp)
	*next = r
}
