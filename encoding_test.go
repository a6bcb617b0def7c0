package argon2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, variant := range []Variant{Argon2d, Argon2i, Argon2id} {
		params := Params{
			TimeCost:     3,
			MemoryKiB:    65537, // deliberately not a multiple of 4*p
			Parallelism:  5,
			OutputLength: 24,
			Variant:      variant,
		}
		salt := []byte("sixteen byte salt")
		digest := []byte("twenty-four byte digest!")

		encoded := Encode(params, salt, digest)
		got, gotSalt, gotDigest, err := Decode(encoded)
		require.NoError(t, err, "encoded: %s", encoded)

		assert.Equal(t, params.Variant, got.Variant)
		assert.Equal(t, params.TimeCost, got.TimeCost)
		assert.Equal(t, params.MemoryKiB, got.MemoryKiB, "memory must round-trip unrounded")
		assert.Equal(t, params.Parallelism, got.Parallelism)
		assert.Equal(t, uint32(len(digest)), got.OutputLength)
		assert.Equal(t, salt, gotSalt)
		assert.Equal(t, digest, gotDigest)
	}
}

func TestEncode_Format(t *testing.T) {
	params := Params{TimeCost: 2, MemoryKiB: 65536, Parallelism: 1, OutputLength: 4, Variant: Argon2id}
	encoded := Encode(params, []byte("somesalt"), []byte{0xDE, 0xAD, 0xBE, 0xEF})

	assert.Equal(t, "$argon2id$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$3q2+7w", encoded)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    error
	}{
		{"empty string", "", ErrInvalidHash},
		{"no dollar prefix", "argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"missing field", "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ", ErrInvalidHash},
		{"extra field", "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA$junk", ErrInvalidHash},
		{"unknown variant", "$argon3$v=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrUnknownVariant},
		{"empty variant", "$$v=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrUnknownVariant},
		{"wrong version", "$argon2id$v=16$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrIncompatibleVersion},
		{"garbled version", "$argon2id$version=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"version trailing garbage", "$argon2id$v=19xyz$m=64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"garbled costs", "$argon2id$v=19$m=64;t=1;p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"cost trailing garbage", "$argon2id$v=19$m=64,t=1,p=1garbage$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"signed cost", "$argon2id$v=19$m=+64,t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"empty cost value", "$argon2id$v=19$m=,t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"extra cost token", "$argon2id$v=19$m=64,t=1,p=1,x=2$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"missing cost key", "$argon2id$v=19$t=1,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"costs out of order", "$argon2id$v=19$t=1,m=64,p=1$c29tZXNhbHQ$AAAA", ErrInvalidHash},
		{"invalid salt base64", "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ=$AAAA", ErrInvalidHash},
		{"invalid digest base64", "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ$not*base64", ErrInvalidHash},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := Decode(tc.encoded)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestDecode_ParseErrorsAreNotMismatch: corrupted input and wrong
// password must remain distinguishable through Verify.
func TestDecode_ParseErrorsAreNotMismatch(t *testing.T) {
	err := Verify([]byte("password"), "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHash)
	assert.NotErrorIs(t, err, ErrMismatchedHashAndPassword)
}

// TestVerify_RejectsTrailingFieldGarbage: an otherwise-valid hash whose
// version or cost field merely starts with a valid token must come back
// as a parse error, never verify.
func TestVerify_RejectsTrailingFieldGarbage(t *testing.T) {
	params := Params{TimeCost: 1, MemoryKiB: 64, Parallelism: 1, OutputLength: 32, Variant: Argon2id}
	result, err := Hash([]byte("password"), []byte("somesalt"), params)
	require.NoError(t, err)

	for _, corrupt := range []string{
		strings.Replace(result.Encoded, "$v=19$", "$v=19xyz$", 1),
		strings.Replace(result.Encoded, ",p=1$", ",p=1garbage$", 1),
	} {
		err := Verify([]byte("password"), corrupt)
		assert.ErrorIs(t, err, ErrInvalidHash, "input: %s", corrupt)
	}
}

// TestVerify_NeverPanics feeds hostile inputs through the whole Verify
// path; every one must come back as an error, not a panic.
func TestVerify_NeverPanics(t *testing.T) {
	hostile := []string{
		"",
		"$",
		"$$$$$",
		"$argon2id$v=19$m=,t=,p=$$",
		"$argon2id$v=19$m=18446744073709551616,t=1,p=1$c29tZXNhbHQ$AAAA",
		"$argon2id$v=19$m=64,t=1,p=0$c29tZXNhbHQ$AAAA",
		"$argon2id$v=19$m=4,t=1,p=1$c29tZXNhbHQ$AAAA",
		strings.Repeat("$argon2id", 40),
		"$argon2id$v=19$m=64,t=1,p=1$\x00\x01$AAAA",
	}

	for _, encoded := range hostile {
		assert.NotPanics(t, func() {
			_ = Verify([]byte("password"), encoded)
		}, "input: %q", encoded)
	}
}

// TestVerify_RejectsUndersizedEmbeddedDigest: a syntactically valid hash
// whose digest field is shorter than the 4-byte minimum fails parameter
// validation, not verification.
func TestVerify_RejectsUndersizedEmbeddedDigest(t *testing.T) {
	// "AAAA" decodes to 3 bytes.
	err := Verify([]byte("password"), "$argon2id$v=19$m=64,t=1,p=1$c29tZXNhbHQ$AAAA")
	assert.ErrorIs(t, err, ErrOutputTooShort)
}
