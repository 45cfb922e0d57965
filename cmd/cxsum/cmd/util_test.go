package cmd

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxkit/crypto/hash"
	"github.com/cxkit/crypto/nvm"
)

func TestNewHasherCatalog(t *testing.T) {
	fixed := map[string]hash.HashingAlgorithm{
		"sha2-224":    hash.SHA2_224,
		"sha2-256":    hash.SHA2_256,
		"sha2-384":    hash.SHA2_384,
		"sha2-512":    hash.SHA2_512,
		"sha3-224":    hash.SHA3_224,
		"sha3-256":    hash.SHA3_256,
		"sha3-384":    hash.SHA3_384,
		"sha3-512":    hash.SHA3_512,
		"keccak-224":  hash.Keccak_224,
		"keccak-256":  hash.Keccak_256,
		"keccak-384":  hash.Keccak_384,
		"keccak-512":  hash.Keccak_512,
		"blake2b-256": hash.Blake2b_256,
		"blake2b-384": hash.Blake2b_384,
		"blake2b-512": hash.Blake2b_512,
	}
	for name, algo := range fixed {
		h, err := newHasher(name, 0, nil, nil)
		require.NoError(t, err, name)
		assert.Equal(t, algo, h.Algorithm(), name)
	}

	// a size of 0 selects the conventional double-width output
	h, err := newHasher("shake-128", 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 32, h.Size())
	h, err = newHasher("shake-256", 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, h.Size())

	// an explicit size wins
	h, err = newHasher("cshake-128", 99, nil, []byte("session"))
	require.NoError(t, err)
	assert.Equal(t, 99, h.Size())
	assert.Equal(t, hash.CSHAKE_128, h.Algorithm())

	// kmac requires a key
	_, err = newHasher("kmac-128", 0, nil, nil)
	assert.Error(t, err)
	h, err = newHasher("kmac-128", 0, make([]byte, 16), nil)
	require.NoError(t, err)
	assert.Equal(t, hash.KMAC128, h.Algorithm())

	_, err = newHasher("md5", 0, nil, nil)
	assert.Error(t, err)
}

// TestSessionRecordRoundTrip drives the absorb/finalize cycle by hand
// against a store in a temporary directory.
func TestSessionRecordRoundTrip(t *testing.T) {
	store, err := nvm.Open(zerolog.Nop(), t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	h, err := newHasher("sha3-256", 0, nil, nil)
	require.NoError(t, err)
	h.Write([]byte("first part|"))

	ctx, err := hash.MarshalHasher(h)
	require.NoError(t, err)
	v := nvm.NewValue[session](store, "job")
	require.NoError(t, v.Set(session{
		Algo:     "sha3-256",
		Size:     h.Size(),
		Context:  ctx,
		Absorbed: 11,
		Created:  time.Now(),
	}))

	sess, err := v.Get()
	require.NoError(t, err)
	assert.True(t, hash.IsValidSHA3Context(sess.Context))
	assert.Equal(t, uint64(11), sess.Absorbed)

	restored, err := hash.RestoreHasher(sess.Context)
	require.NoError(t, err)
	restored.Write([]byte("second part"))

	expected := hash.NewSHA3_256().ComputeHash([]byte("first part|second part"))
	assert.Equal(t, expected, restored.SumHash())
}
