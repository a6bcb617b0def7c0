package argon2core

// fBlaMka is the modified BLAKE2b addition used by Argon2: a 64-bit add
// augmented with the product of the low 32 bits of both operands. The
// multiplication forces more gate depth per step than plain addition,
// which is what makes the compression function expensive to shortcut in
// hardware.
//
// fBlaMka(x, y) = x + y + 2 * lo32(x) * lo32(y), all mod 2^64.
func fBlaMka(x, y uint64) uint64 {
	return x + y + 2*uint64(uint32(x))*uint64(uint32(y))
}

// g mixes four words with the Argon2 variant of the BLAKE2b quarter
// round. The rotation amounts (32, 24, 16, 63) are the BLAKE2b constants;
// only the additions are replaced by fBlaMka.
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)

	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// rotr64 rotates x right by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// gRound applies one full BLAKE2b round (column step then diagonal step)
// to a 16-word state in place. The indexing pattern is the BLAKE2b message
// schedule with the message words omitted, exactly as Argon2 uses it.
func gRound(v []uint64) {
	_ = v[15]

	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
