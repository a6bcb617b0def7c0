package argon2core

import "sync"

// fillConfig carries the matrix dimensions derived from the cost
// parameters, so the fill loops do not recompute them per block.
type fillConfig struct {
	mode          Mode
	timeCost      uint32
	lanes         uint32
	laneLength    uint32
	segmentLength uint32
	totalBlocks   uint32
}

// fillMemory drives the fill order: pass by pass, slice by slice, with
// every lane of a slice running on its own goroutine. Lanes inside one
// slice never touch each other's in-progress blocks (cross-lane
// references only reach already-completed slices), so they need no
// locking; the WaitGroup join is the synchronization barrier between
// slices.
func fillMemory(memory []Block, cfg *fillConfig) {
	for pass := uint32(0); pass < cfg.timeCost; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < cfg.lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(memory, cfg, pass, slice, lane)
				}(lane)
			}
			wg.Wait()
		}
	}
}

// dataIndependent reports whether addressing for the given position comes
// from the counter-based generator rather than from block contents.
// Argon2i always does; Argon2id does for the first two slices of the
// first pass and switches to data-dependent addressing afterwards;
// Argon2d never does.
func dataIndependent(mode Mode, pass, slice uint32) bool {
	return mode == ModeI || (mode == ModeID && pass == 0 && slice < SyncPoints/2)
}

// fillSegment fills one segment: the blocks of a single (pass, slice,
// lane) triple, in order. Each block mixes its predecessor with a
// reference block chosen by indexAlpha; on passes after the first the
// result is XORed into the existing block instead of replacing it.
//
// For data-independent positions the pseudo-random words come from
// address blocks: the compression function applied twice to a counter
// block holding (pass, lane, slice, total blocks, time cost, mode,
// counter). One address block yields 128 words, so it is regenerated
// every 128 blocks with the counter bumped.
func fillSegment(memory []Block, cfg *fillConfig, pass, slice, lane uint32) {
	var addresses, input, zero Block

	independent := dataIndependent(cfg.mode, pass, slice)
	if independent {
		input[0] = uint64(pass)
		input[1] = uint64(lane)
		input[2] = uint64(slice)
		input[3] = uint64(cfg.totalBlocks)
		input[4] = uint64(cfg.timeCost)
		input[5] = uint64(cfg.mode)
	}

	index := uint32(0)
	if pass == 0 && slice == 0 {
		// Blocks 0 and 1 of every lane are seeded from H0.
		index = 2
		if independent {
			input[6]++
			fillBlock(&zero, &input, &addresses, false)
			fillBlock(&zero, &addresses, &addresses, false)
		}
	}

	offset := lane*cfg.laneLength + slice*cfg.segmentLength + index

	var random uint64
	for ; index < cfg.segmentLength; index, offset = index+1, offset+1 {
		prev := offset - 1
		if index == 0 && slice == 0 {
			prev += cfg.laneLength // wrap to the last block of the lane
		}

		if independent {
			if index%QWordsInBlock == 0 {
				input[6]++
				fillBlock(&zero, &input, &addresses, false)
				fillBlock(&zero, &addresses, &addresses, false)
			}
			random = addresses[index%QWordsInBlock]
		} else {
			random = memory[prev][0]
		}

		pos := Position{Pass: pass, Lane: lane, Slice: slice, Index: index}
		ref := indexAlpha(&pos, random, cfg.lanes, cfg.segmentLength, cfg.laneLength)

		fillBlock(&memory[prev], &memory[ref], &memory[offset], pass > 0)
	}
}
