// Package argon2 implements the Argon2 password hashing function
// (RFC 9106) in pure Go: the Argon2d, Argon2i and Argon2id variants, the
// PHC encoded string format, and constant-time verification.
//
// Argon2 is a memory-hard key derivation function: each hash fills a
// large matrix of 1024-byte blocks with pseudo-random data, which makes
// large-scale GPU and ASIC cracking pay for memory instead of just
// compute. The memory, time and parallelism costs are explicit
// parameters.
//
// Example usage:
//
//	params := argon2.DefaultParams()
//	result, err := argon2.Hash([]byte("hunter2"), nil, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// store result.Encoded, e.g.
//	// $argon2id$v=19$m=65536,t=2,p=4$c29tZXNhbHQ$...
//
//	err = argon2.Verify([]byte("hunter2"), result.Encoded)
//
// Argon2id is the right default for password hashing. Argon2d is faster
// but its memory access pattern depends on the password, so it leaks
// through cache timing; Argon2i is fully timing-independent at some cost
// in memory bandwidth.
package argon2

import "fmt"

// Version is the Argon2 version implemented by this package (0x13 = 19).
const Version = 0x13

// Variant selects the Argon2 addressing policy.
type Variant int

const (
	// Argon2d uses data-dependent addressing: fastest, but its timing is
	// observable, so it suits proof-of-work more than password storage.
	Argon2d Variant = iota

	// Argon2i uses data-independent addressing and resists side-channel
	// observation.
	Argon2i

	// Argon2id is the hybrid recommended by RFC 9106: data-independent
	// for the first half of the first pass, data-dependent afterwards.
	Argon2id
)

// String returns the lowercase tag used in encoded hashes.
func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return fmt.Sprintf("argon2(%d)", int(v))
	}
}

// ParseVariant maps an encoded-hash tag back to its Variant. Unknown tags
// are an error, never a silent default.
func ParseVariant(tag string) (Variant, error) {
	switch tag {
	case "argon2d":
		return Argon2d, nil
	case "argon2i":
		return Argon2i, nil
	case "argon2id":
		return Argon2id, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownVariant, tag)
	}
}

// valid reports whether v is one of the three defined variants.
func (v Variant) valid() bool {
	return v == Argon2d || v == Argon2i || v == Argon2id
}

// Parameter bounds.
const (
	// MinOutputLength is the shortest digest Argon2 may produce.
	MinOutputLength = 4

	// MaxParallelism is the lane count ceiling fixed by the Argon2
	// specification (2^24 - 1).
	MaxParallelism = 1<<24 - 1

	// MaxMemoryKiB caps the memory cost at 16 GiB. The format allows up
	// to 2^32-1 KiB; the ceiling keeps a single corrupt or hostile
	// parameter set from requesting the whole address space.
	MaxMemoryKiB = 16 * 1024 * 1024

	// DefaultSaltLength is the salt size generated when the caller does
	// not supply one.
	DefaultSaltLength = 16
)

// Params holds the cost parameters for one hash computation.
type Params struct {
	// TimeCost is the number of passes over the memory matrix (t).
	TimeCost uint32

	// MemoryKiB is the memory cost in KiB (m). The requested value is
	// part of the hash input; the matrix is sized by it rounded down to
	// a multiple of 4*Parallelism.
	MemoryKiB uint32

	// Parallelism is the lane count (p). Lanes within a slice are filled
	// by concurrent goroutines.
	Parallelism uint32

	// OutputLength is the digest length in bytes.
	OutputLength uint32

	// Variant selects Argon2d, Argon2i or Argon2id.
	Variant Variant
}

// DefaultParams returns the RFC 9106 second recommended parameter set:
// Argon2id, 64 MiB, t=3, four lanes, 32-byte digest.
func DefaultParams() Params {
	return Params{
		TimeCost:     3,
		MemoryKiB:    64 * 1024,
		Parallelism:  4,
		OutputLength: 32,
		Variant:      Argon2id,
	}
}

// Validate checks every cost parameter against its bound. It is called by
// Hash and Verify before any memory is allocated; a parameter violation
// never starts the memory-hard computation.
func (p *Params) Validate() error {
	if !p.Variant.valid() {
		return fmt.Errorf("%w %q", ErrUnknownVariant, p.Variant)
	}
	if p.TimeCost < 1 {
		return ErrTimeTooSmall
	}
	if p.Parallelism < 1 {
		return ErrParallelismTooSmall
	}
	if p.Parallelism > MaxParallelism {
		return ErrParallelismTooLarge
	}
	if p.MemoryKiB < 8*p.Parallelism {
		return ErrMemoryTooSmall
	}
	if p.MemoryKiB > MaxMemoryKiB {
		return ErrMemoryTooLarge
	}
	if p.OutputLength < MinOutputLength {
		return ErrOutputTooShort
	}
	return nil
}
