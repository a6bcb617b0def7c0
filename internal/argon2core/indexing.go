package argon2core

const (
	// SyncPoints is the number of slices each lane is divided into. Slice
	// boundaries are the only synchronization points between lanes.
	SyncPoints = 4
)

// Position identifies the block currently being filled: which pass over
// the matrix, which lane, which slice, and the index within the segment.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// indexAlpha maps a pseudo-random word to the absolute matrix offset of
// the reference block. The same mapping serves every variant; only the
// origin of rand differs (block contents for the data-dependent modes,
// the address generator for the data-independent ones).
//
// The high 32 bits of rand select the reference lane. On the first slice
// of the first pass only the current lane has data, so the reference is
// forced same-lane. The candidate pool is every block already finished
// from the referenced lane's point of view:
//
//   - pass 0: all blocks of finished slices, plus the blocks already
//     written in the current segment when staying in our own lane;
//   - later passes: the three other slices (of the previous pass) plus
//     our current segment progress.
//
// The immediately previous block is always excluded (m--), since it is
// already an input to the compression.
//
// The low 32 bits pick a block out of that pool with a quadratic skew:
// x is squared as a 32.32 fixed-point fraction, biasing selection toward
// the most recently written blocks. The exact arithmetic below is what
// the reference vectors are computed with, so it must not be
// "simplified".
func indexAlpha(pos *Position, rand uint64, lanes, segmentLength, laneLength uint32) uint32 {
	refLane := uint32(rand>>32) % lanes
	if pos.Pass == 0 && pos.Slice == 0 {
		refLane = pos.Lane
	}

	m := 3 * segmentLength
	s := ((pos.Slice + 1) % SyncPoints) * segmentLength
	if pos.Lane == refLane {
		m += pos.Index
	}
	if pos.Pass == 0 {
		m, s = pos.Slice*segmentLength, 0
		if pos.Slice == 0 || pos.Lane == refLane {
			m += pos.Index
		}
	}
	if pos.Index == 0 || pos.Lane == refLane {
		m--
	}

	return phi(rand, uint64(m), uint64(s), refLane, laneLength)
}

// phi applies the non-uniform distribution: relative position
// (m - 1 - m*x^2/2^64) counted backwards from the newest candidate,
// shifted by the pool start s and wrapped around the lane.
func phi(rand, m, s uint64, refLane, laneLength uint32) uint32 {
	p := rand & 0xFFFFFFFF
	p = (p * p) >> 32
	p = (p * m) >> 32
	return refLane*laneLength + uint32((s+m-(p+1))%uint64(laneLength))
}
