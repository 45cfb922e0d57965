package hash

import (
	"encoding"
	"io"
)

// ShakeHash defines the interface to hash functions that support
// arbitrary-length output.
type ShakeHash interface {
	Hasher

	// Read squeezes more output from the sponge. Reading affects the
	// sponge's state, unlike Sum, SumHash or ComputeHash which all
	// operate on a copy. It never returns an error.
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// MarshalBinary snapshots the sponge context for later restoration
	// with RestoreHasher.
	encoding.BinaryMarshaler
}

// maxXOFOutputLen bounds the output size configured at construction of the
// extendable-output hashers, and consequently the output size a restored
// context may claim. Larger outputs remain available through Read.
const maxXOFOutputLen = 1 << 16

func (d *state) Clone() ShakeHash {
	return d.clone()
}

// NewSHAKE128 returns a new SHAKE128 variable-output-length hasher.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
// outputSize is the output size of Sum, SumHash and ComputeHash in bytes.
// The returned error is non-nil if outputSize is not between 1 and 65536.
func NewSHAKE128(outputSize int) (ShakeHash, error) {
	if outputSize <= 0 || outputSize > maxXOFOutputLen {
		return nil, invalidParamsErrorf("output size must be between 1 and %d, got %d", maxXOFOutputLen, outputSize)
	}
	return &state{
		algo:      SHAKE_128,
		rate:      168,
		outputLen: outputSize,
		dsbyte:    dsbyteShake,
	}, nil
}

// NewSHAKE256 returns a new SHAKE256 variable-output-length hasher.
// Its generic security strength is 256 bits against all attacks if at
// least 64 bytes of its output are used.
// outputSize is the output size of Sum, SumHash and ComputeHash in bytes.
// The returned error is non-nil if outputSize is not between 1 and 65536.
func NewSHAKE256(outputSize int) (ShakeHash, error) {
	if outputSize <= 0 || outputSize > maxXOFOutputLen {
		return nil, invalidParamsErrorf("output size must be between 1 and %d, got %d", maxXOFOutputLen, outputSize)
	}
	return &state{
		algo:      SHAKE_256,
		rate:      136,
		outputLen: outputSize,
		dsbyte:    dsbyteShake,
	}, nil
}

// SumSHAKE128 returns a SHAKE128 digest of data with the given size in bytes.
func SumSHAKE128(data []byte, size int) (Hash, error) {
	h, err := NewSHAKE128(size)
	if err != nil {
		return nil, err
	}
	return h.ComputeHash(data), nil
}

// SumSHAKE256 returns a SHAKE256 digest of data with the given size in bytes.
func SumSHAKE256(data []byte, size int) (Hash, error) {
	h, err := NewSHAKE256(size)
	if err != nil {
		return nil, err
	}
	return h.ComputeHash(data), nil
}
