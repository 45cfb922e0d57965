package hash

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// blake2b_256Algo
type blake2b_256Algo struct {
	hash.Hash
}

// NewBlake2b_256 returns a new instance of BLAKE2b-256 hasher.
func NewBlake2b_256() Hasher {
	// the error is always nil with a nil key
	h, _ := blake2b.New256(nil)
	return &blake2b_256Algo{Hash: h}
}

func (s *blake2b_256Algo) Algorithm() HashingAlgorithm {
	return Blake2b_256
}

// ComputeHash calculates and returns the BLAKE2b-256 output of input byte array.
func (s *blake2b_256Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the BLAKE2b-256 output.
// It does not reset the state to allow further writing.
func (s *blake2b_256Algo) SumHash() Hash {
	return s.Sum(nil)
}

// blake2b_384Algo
type blake2b_384Algo struct {
	hash.Hash
}

// NewBlake2b_384 returns a new instance of BLAKE2b-384 hasher.
func NewBlake2b_384() Hasher {
	// the error is always nil with a nil key
	h, _ := blake2b.New384(nil)
	return &blake2b_384Algo{Hash: h}
}

func (s *blake2b_384Algo) Algorithm() HashingAlgorithm {
	return Blake2b_384
}

// ComputeHash calculates and returns the BLAKE2b-384 output of input byte array.
func (s *blake2b_384Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the BLAKE2b-384 output.
// It does not reset the state to allow further writing.
func (s *blake2b_384Algo) SumHash() Hash {
	return s.Sum(nil)
}

// blake2b_512Algo
type blake2b_512Algo struct {
	hash.Hash
}

// NewBlake2b_512 returns a new instance of BLAKE2b-512 hasher.
func NewBlake2b_512() Hasher {
	// the error is always nil with a nil key
	h, _ := blake2b.New512(nil)
	return &blake2b_512Algo{Hash: h}
}

func (s *blake2b_512Algo) Algorithm() HashingAlgorithm {
	return Blake2b_512
}

// ComputeHash calculates and returns the BLAKE2b-512 output of input byte array.
func (s *blake2b_512Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the BLAKE2b-512 output.
// It does not reset the state to allow further writing.
func (s *blake2b_512Algo) SumHash() Hash {
	return s.Sum(nil)
}
