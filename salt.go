package argon2

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSalt returns n cryptographically random bytes for use as a
// salt. RFC 9106 calls for at least 8 bytes; 16 is the conventional
// choice and what Hash generates when given no salt.
func GenerateSalt(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("argon2: salt length must be positive, got %d", n)
	}
	salt := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("argon2: reading random salt: %w", err)
	}
	return salt, nil
}
