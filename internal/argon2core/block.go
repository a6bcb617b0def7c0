package argon2core

import (
	"encoding/binary"
	"fmt"
)

const (
	// BlockSize is the size of one memory block in bytes.
	BlockSize = 1024

	// QWordsInBlock is the number of 64-bit words in a block (1024 / 8).
	QWordsInBlock = 128
)

// Block is one 1024-byte cell of the working memory matrix, held as 128
// little-endian 64-bit words. Argon2 operates on whole 64-bit words, so
// keeping blocks as uint64 arrays avoids repeated byte decoding in the
// fill loop.
type Block [QWordsInBlock]uint64

// XOR folds another block into this one in place.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Zero erases the block contents. Used to wipe the matrix and any
// temporary blocks that held key-derived material before they are
// released.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// FromBytes loads the block from exactly BlockSize bytes of little-endian
// words.
func (b *Block) FromBytes(data []byte) error {
	if len(data) != BlockSize {
		return fmt.Errorf("argon2core: block must be %d bytes, got %d", BlockSize, len(data))
	}
	b.setBytes(data)
	return nil
}

// setBytes loads the block from data, which the caller guarantees is at
// least BlockSize bytes.
func (b *Block) setBytes(data []byte) {
	_ = data[BlockSize-1]
	for i := 0; i < QWordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
}

// ToBytes serializes the block as BlockSize little-endian bytes.
func (b *Block) ToBytes() []byte {
	data := make([]byte, BlockSize)
	for i := 0; i < QWordsInBlock; i++ {
		binary.LittleEndian.PutUint64(data[i*8:(i+1)*8], b[i])
	}
	return data
}
