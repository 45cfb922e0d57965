package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// sha2_224Algo
type sha2_224Algo struct {
	hash.Hash
}

// NewSHA2_224 returns a new instance of SHA2-224 hasher.
func NewSHA2_224() Hasher {
	return &sha2_224Algo{
		Hash: sha256.New224()}
}

func (s *sha2_224Algo) Algorithm() HashingAlgorithm {
	return SHA2_224
}

// ComputeHash calculates and returns the SHA2-224 output of input byte array.
func (s *sha2_224Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA2-224 output.
// It does not reset the state to allow further writing.
func (s *sha2_224Algo) SumHash() Hash {
	return s.Sum(nil)
}

// sha2_256Algo
type sha2_256Algo struct {
	hash.Hash
}

// NewSHA2_256 returns a new instance of SHA2-256 hasher.
func NewSHA2_256() Hasher {
	return &sha2_256Algo{
		Hash: sha256.New()}
}

func (s *sha2_256Algo) Algorithm() HashingAlgorithm {
	return SHA2_256
}

// ComputeHash calculates and returns the SHA2-256 output of input byte array.
func (s *sha2_256Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA2-256 output.
// It does not reset the state to allow further writing.
func (s *sha2_256Algo) SumHash() Hash {
	return s.Sum(nil)
}

// sha2_384Algo
type sha2_384Algo struct {
	hash.Hash
}

// NewSHA2_384 returns a new instance of SHA2-384 hasher.
func NewSHA2_384() Hasher {
	return &sha2_384Algo{
		Hash: sha512.New384()}
}

func (s *sha2_384Algo) Algorithm() HashingAlgorithm {
	return SHA2_384
}

// ComputeHash calculates and returns the SHA2-384 output of input byte array.
func (s *sha2_384Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA2-384 output.
// It does not reset the state to allow further writing.
func (s *sha2_384Algo) SumHash() Hash {
	return s.Sum(nil)
}

// sha2_512Algo
type sha2_512Algo struct {
	hash.Hash
}

// NewSHA2_512 returns a new instance of SHA2-512 hasher.
func NewSHA2_512() Hasher {
	return &sha2_512Algo{
		Hash: sha512.New()}
}

func (s *sha2_512Algo) Algorithm() HashingAlgorithm {
	return SHA2_512
}

// ComputeHash calculates and returns the SHA2-512 output of input byte array.
func (s *sha2_512Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA2-512 output.
// It does not reset the state to allow further writing.
func (s *sha2_512Algo) SumHash() Hash {
	return s.Sum(nil)
}
