package argon2

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/opd-ai/go-argon2/internal/argon2core"
)

// HashResult carries the three representations of one computed hash.
type HashResult struct {
	// Digest is the raw derived bytes, OutputLength long.
	Digest []byte

	// Hex is the digest in lowercase hexadecimal.
	Hex string

	// Encoded is the self-describing PHC string, the form meant for
	// storage: it embeds the variant, version, cost parameters and salt
	// needed to verify a password later.
	Encoded string

	// Salt is the salt that was used, whether supplied or generated.
	Salt []byte
}

// Hash derives a digest from password and salt with the given cost
// parameters. If salt is nil or empty, DefaultSaltLength random bytes are
// drawn from crypto/rand.
//
// The password is read, never retained: the working memory is wiped and
// released before Hash returns, on success and failure alike. Parameter
// violations and allocation failure come back as errors before or instead
// of a digest — never alongside one.
func Hash(password, salt []byte, params Params) (*HashResult, error) {
	return hashWithSecret(password, salt, nil, params)
}

// HashWithSecret is Hash with an additional secret key ("pepper") mixed
// into the seed. The secret is not recoverable from the encoded hash, and
// verification requires supplying the same secret to VerifyWithSecret.
func HashWithSecret(password, salt, secret []byte, params Params) (*HashResult, error) {
	return hashWithSecret(password, salt, secret, params)
}

func hashWithSecret(password, salt, secret []byte, params Params) (*HashResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if len(salt) == 0 {
		var err error
		salt, err = GenerateSalt(DefaultSaltLength)
		if err != nil {
			return nil, err
		}
	}

	digest, err := argon2core.Key(password, salt, secret, nil,
		coreMode(params.Variant), params.TimeCost, params.MemoryKiB,
		params.Parallelism, params.OutputLength)
	if err != nil {
		if errors.Is(err, argon2core.ErrAllocation) {
			return nil, fmt.Errorf("%w (%d KiB)", ErrAllocation, params.MemoryKiB)
		}
		return nil, err
	}

	return &HashResult{
		Digest:  digest,
		Hex:     hex.EncodeToString(digest),
		Encoded: Encode(params, salt, digest),
		Salt:    salt,
	}, nil
}

// Verify recomputes the hash of password with the parameters and salt
// embedded in encoded and compares digests in constant time.
//
// It returns nil on a match, ErrMismatchedHashAndPassword when the
// password is wrong, and a parse error (ErrInvalidHash and friends) when
// encoded is malformed — three outcomes callers can tell apart.
func Verify(password []byte, encoded string) error {
	return verify(password, nil, encoded, nil)
}

// VerifyWithVariant verifies against encoded but recomputes with an
// explicitly chosen variant, overriding the tag field. The explicit
// variant always wins over the parsed one; the encoded string must still
// parse cleanly.
func VerifyWithVariant(password []byte, encoded string, variant Variant) error {
	return verify(password, nil, encoded, &variant)
}

// VerifyWithSecret verifies a hash produced by HashWithSecret.
func VerifyWithSecret(password, secret []byte, encoded string) error {
	return verify(password, secret, encoded, nil)
}

func verify(password, secret []byte, encoded string, override *Variant) error {
	params, salt, digest, err := Decode(encoded)
	if err != nil {
		return err
	}
	if override != nil {
		params.Variant = *override
	}
	if err := params.Validate(); err != nil {
		return err
	}

	computed, err := argon2core.Key(password, salt, secret, nil,
		coreMode(params.Variant), params.TimeCost, params.MemoryKiB,
		params.Parallelism, params.OutputLength)
	if err != nil {
		if errors.Is(err, argon2core.ErrAllocation) {
			return fmt.Errorf("%w (%d KiB)", ErrAllocation, params.MemoryKiB)
		}
		return err
	}

	if subtle.ConstantTimeCompare(computed, digest) == 1 {
		return nil
	}
	return ErrMismatchedHashAndPassword
}

// coreMode maps the public variant to the wire-format mode value the core
// hashes into H0.
func coreMode(v Variant) argon2core.Mode {
	switch v {
	case Argon2d:
		return argon2core.ModeD
	case Argon2i:
		return argon2core.ModeI
	default:
		return argon2core.ModeID
	}
}
