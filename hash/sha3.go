package hash

// NewSHA3_224 returns a new instance of SHA3-224 hasher
func NewSHA3_224() Hasher {
	return &state{
		algo:      SHA3_224,
		rate:      144,
		outputLen: HashLenSha3_224,
		dsbyte:    dsbyteSHA3,
	}
}

// NewSHA3_256 returns a new instance of SHA3-256 hasher
func NewSHA3_256() Hasher {
	return &state{
		algo:      SHA3_256,
		rate:      136,
		outputLen: HashLenSha3_256,
		dsbyte:    dsbyteSHA3,
	}
}

// NewSHA3_384 returns a new instance of SHA3-384 hasher
func NewSHA3_384() Hasher {
	return &state{
		algo:      SHA3_384,
		rate:      104,
		outputLen: HashLenSha3_384,
		dsbyte:    dsbyteSHA3,
	}
}

// NewSHA3_512 returns a new instance of SHA3-512 hasher
func NewSHA3_512() Hasher {
	return &state{
		algo:      SHA3_512,
		rate:      72,
		outputLen: HashLenSha3_512,
		dsbyte:    dsbyteSHA3,
	}
}
