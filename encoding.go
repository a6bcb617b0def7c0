package argon2

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// encodedFields is the number of $-separated fields in a PHC string,
// counting the empty field before the leading $.
const encodedFields = 6

// Encode serializes a digest and the parameters that produced it into the
// PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<digest>
//
// Salt and digest are base64 without padding. The memory cost is encoded
// exactly as given, before rounding, so Decode reconstructs the caller's
// parameters byte for byte.
func Encode(params Params, salt, digest []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		params.Variant, Version,
		params.MemoryKiB, params.TimeCost, params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))
}

// Decode parses a PHC encoded hash back into the parameters, salt and
// digest it was produced from. The returned Params carry the variant from
// the tag field and an OutputLength matching the embedded digest.
//
// Malformed input is rejected with ErrInvalidHash (or the more specific
// ErrIncompatibleVersion / ErrUnknownVariant); Decode never guesses at
// missing or unrecognized fields.
func Decode(encoded string) (Params, []byte, []byte, error) {
	var params Params

	fields := strings.Split(encoded, "$")
	if len(fields) != encodedFields || fields[0] != "" {
		return params, nil, nil, ErrInvalidHash
	}

	variant, err := ParseVariant(fields[1])
	if err != nil {
		return params, nil, nil, err
	}
	params.Variant = variant

	version, err := parseCost(fields[2], "v")
	if err != nil {
		return params, nil, nil, err
	}
	if version != Version {
		return params, nil, nil, fmt.Errorf("%w %d", ErrIncompatibleVersion, version)
	}

	costs := strings.Split(fields[3], ",")
	if len(costs) != 3 {
		return params, nil, nil, ErrInvalidHash
	}
	if params.MemoryKiB, err = parseCost(costs[0], "m"); err != nil {
		return params, nil, nil, err
	}
	if params.TimeCost, err = parseCost(costs[1], "t"); err != nil {
		return params, nil, nil, err
	}
	if params.Parallelism, err = parseCost(costs[2], "p"); err != nil {
		return params, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(fields[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: bad salt encoding", ErrInvalidHash)
	}

	digest, err := base64.RawStdEncoding.Strict().DecodeString(fields[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: bad digest encoding", ErrInvalidHash)
	}
	params.OutputLength = uint32(len(digest))

	return params, salt, digest, nil
}

// parseCost parses one "key=digits" token. The whole token must be
// consumed: trailing bytes, signs and empty values are all malformed, not
// ignored.
func parseCost(token, key string) (uint32, error) {
	value, ok := strings.CutPrefix(token, key+"=")
	if !ok {
		return 0, ErrInvalidHash
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s value", ErrInvalidHash, key)
	}
	return uint32(n), nil
}
