// Package hash provides the hashing algorithms of the SDK: the SHA-3 family
// with its legacy Keccak, SHAKE, cSHAKE and KMAC variants, together with
// SHA-2 and BLAKE2b, behind a common incremental Hasher interface.
//
// Sponge-based hashers can additionally snapshot their context mid-stream
// and resume it later, possibly in another process. Restored contexts are
// validated before use, see RestoreHasher.
package hash

import (
	"bytes"
	"encoding/hex"
	"hash"
)

//revive:disable:var-naming

// HashingAlgorithm is an identifier for a hashing algorithm.
type HashingAlgorithm int

const (
	// Supported hashing algorithms
	UnknownHashingAlgorithm HashingAlgorithm = iota
	SHA2_224
	SHA2_256
	SHA2_384
	SHA2_512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	Keccak_224
	Keccak_256
	Keccak_384
	Keccak_512
	SHAKE_128
	SHAKE_256
	CSHAKE_128
	CSHAKE_256
	KMAC128
	Blake2b_256
	Blake2b_384
	Blake2b_512
)

// String returns the string representation of this hashing algorithm.
func (f HashingAlgorithm) String() string {
	return [...]string{
		"UNKNOWN",
		"SHA2_224", "SHA2_256", "SHA2_384", "SHA2_512",
		"SHA3_224", "SHA3_256", "SHA3_384", "SHA3_512",
		"Keccak_224", "Keccak_256", "Keccak_384", "Keccak_512",
		"SHAKE_128", "SHAKE_256", "CSHAKE_128", "CSHAKE_256", "KMAC128",
		"Blake2b_256", "Blake2b_384", "Blake2b_512",
	}[f]
}

const (
	// Lengths of hash outputs in bytes
	HashLenSha2_224    = 28
	HashLenSha2_256    = 32
	HashLenSha2_384    = 48
	HashLenSha2_512    = 64
	HashLenSha3_224    = 28
	HashLenSha3_256    = 32
	HashLenSha3_384    = 48
	HashLenSha3_512    = 64
	HashLenKeccak_224  = 28
	HashLenKeccak_256  = 32
	HashLenKeccak_384  = 48
	HashLenKeccak_512  = 64
	HashLenBlake2b_256 = 32
	HashLenBlake2b_384 = 48
	HashLenBlake2b_512 = 64

	// KmacMinKeyLen is the minimum key length of KMAC128 in bytes
	KmacMinKeyLen = 16
)

// Hash is the hash algorithms output types
type Hash []byte

// Equal checks if a hash is equal to a given hash
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hex returns the hex string representation of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Hash) String() string {
	return h.Hex()
}

// Hasher interface
type Hasher interface {
	// Algorithm returns the hashing algorithm of this hasher.
	Algorithm() HashingAlgorithm
	// Size returns the hash output length
	Size() int
	// ComputeHash returns the hash output regardless of the existing hash state.
	// It may update the state or not depending on the implementation. Thread safety
	// is also implementation dependent.
	ComputeHash([]byte) Hash
	// Write([]bytes) (using the io.Writer interface) adds more bytes to the
	// current hash state.
	hash.Hash
	// SumHash returns the hash output.
	// It may update the state or not depending on the implementation.
	SumHash() Hash
	// Reset resets the hash state.
	Reset()
}

// NewHasher returns a new hasher of the given fixed-output algorithm.
//
// The extendable-output and keyed algorithms (SHAKE, cSHAKE and KMAC) take
// construction parameters and have their own constructors.
func NewHasher(algo HashingAlgorithm) (Hasher, error) {
	switch algo {
	case SHA2_224:
		return NewSHA2_224(), nil
	case SHA2_256:
		return NewSHA2_256(), nil
	case SHA2_384:
		return NewSHA2_384(), nil
	case SHA2_512:
		return NewSHA2_512(), nil
	case SHA3_224:
		return NewSHA3_224(), nil
	case SHA3_256:
		return NewSHA3_256(), nil
	case SHA3_384:
		return NewSHA3_384(), nil
	case SHA3_512:
		return NewSHA3_512(), nil
	case Keccak_224:
		return NewKeccak_224(), nil
	case Keccak_256:
		return NewKeccak_256(), nil
	case Keccak_384:
		return NewKeccak_384(), nil
	case Keccak_512:
		return NewKeccak_512(), nil
	case Blake2b_256:
		return NewBlake2b_256(), nil
	case Blake2b_384:
		return NewBlake2b_384(), nil
	case Blake2b_512:
		return NewBlake2b_512(), nil
	case SHAKE_128, SHAKE_256, CSHAKE_128, CSHAKE_256, KMAC128:
		return nil, invalidParamsErrorf("%s takes construction parameters, use its dedicated constructor", algo)
	default:
		return nil, invalidParamsErrorf("hashing algorithm %d is not supported", algo)
	}
}
