package hash

// The Keccak hashers implement the original sponge submission, which
// differs from the standardized SHA-3 functions only by the padding
// domain bits. This flavor survives in Ethereum and other systems
// designed before FIPS 202 was finalized.

// NewKeccak_224 returns a new instance of legacy Keccak-224 hasher
func NewKeccak_224() Hasher {
	return &state{
		algo:      Keccak_224,
		rate:      144,
		outputLen: HashLenKeccak_224,
		dsbyte:    dsbyteKeccak,
	}
}

// NewKeccak_256 returns a new instance of legacy Keccak-256 hasher
func NewKeccak_256() Hasher {
	return &state{
		algo:      Keccak_256,
		rate:      136,
		outputLen: HashLenKeccak_256,
		dsbyte:    dsbyteKeccak,
	}
}

// NewKeccak_384 returns a new instance of legacy Keccak-384 hasher
func NewKeccak_384() Hasher {
	return &state{
		algo:      Keccak_384,
		rate:      104,
		outputLen: HashLenKeccak_384,
		dsbyte:    dsbyteKeccak,
	}
}

// NewKeccak_512 returns a new instance of legacy Keccak-512 hasher
func NewKeccak_512() Hasher {
	return &state{
		algo:      Keccak_512,
		rate:      72,
		outputLen: HashLenKeccak_512,
		dsbyte:    dsbyteKeccak,
	}
}
