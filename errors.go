package argon2

import (
	"errors"
	"fmt"
)

// Parameter validation errors. Validation runs before any memory is
// allocated, so a rejected parameter set never pays for the memory-hard
// work. Each violated bound has its own sentinel, and every one of them
// matches errors.Is(err, ErrInvalidParams).
var (
	// ErrInvalidParams is the base error every parameter violation wraps.
	ErrInvalidParams = errors.New("argon2: invalid parameters")

	// ErrTimeTooSmall is returned when the time cost is below 1.
	ErrTimeTooSmall = fmt.Errorf("%w: time cost must be at least 1", ErrInvalidParams)
	// ErrMemoryTooSmall is returned when the memory cost is below 8 KiB per lane.
	ErrMemoryTooSmall = fmt.Errorf("%w: memory cost must be at least 8 KiB per lane", ErrInvalidParams)
	// ErrMemoryTooLarge is returned when the memory cost exceeds MaxMemoryKiB.
	ErrMemoryTooLarge = fmt.Errorf("%w: memory cost exceeds %d KiB", ErrInvalidParams, MaxMemoryKiB)
	// ErrParallelismTooSmall is returned when the lane count is 0.
	ErrParallelismTooSmall = fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidParams)
	// ErrParallelismTooLarge is returned when the lane count exceeds MaxParallelism.
	ErrParallelismTooLarge = fmt.Errorf("%w: parallelism exceeds %d lanes", ErrInvalidParams, MaxParallelism)
	// ErrOutputTooShort is returned when the requested digest is shorter
	// than MinOutputLength bytes.
	ErrOutputTooShort = fmt.Errorf("%w: output length must be at least %d bytes", ErrInvalidParams, MinOutputLength)
)

// Encoded string parse errors, kept distinct from a verification mismatch
// so callers can tell a corrupted hash from a wrong password.
var (
	// ErrInvalidHash is returned when an encoded hash is not in the
	// $argon2{d,i,id}$v=..$m=..,t=..,p=..$salt$hash format.
	ErrInvalidHash = errors.New("argon2: encoded hash is not in the correct format")
	// ErrIncompatibleVersion is returned when an encoded hash was
	// produced by an Argon2 version other than 0x13.
	ErrIncompatibleVersion = fmt.Errorf("%w: unsupported version", ErrInvalidHash)
	// ErrUnknownVariant is returned when the variant tag of an encoded
	// hash is not argon2d, argon2i or argon2id. Unrecognized tags are a
	// hard error, never silently defaulted.
	ErrUnknownVariant = fmt.Errorf("%w: unknown variant tag", ErrInvalidHash)
)

// ErrAllocation is returned when the working memory matrix cannot be
// allocated. The computation starts only after allocation succeeds, so
// this error never accompanies a partial result.
var ErrAllocation = errors.New("argon2: cannot allocate memory matrix")

// ErrMismatchedHashAndPassword is returned by Verify when the password
// does not produce the embedded digest. It is an expected negative
// outcome, not a malfunction.
var ErrMismatchedHashAndPassword = errors.New("argon2: encoded hash is not the hash of the given password")
