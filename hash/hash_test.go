package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"pgregory.net/rapid"
)

// Sanity checks of SHA2-224
func TestSanitySha2_224(t *testing.T) {
	input := []byte("Not your keys, not your coins")
	expected, _ := hex.DecodeString("5a5beaa13f5df3d85ac86244959ba28eed0865a2cd10d15cce479a2a")

	alg := NewSHA2_224()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of SHA2-256
func TestSanitySha2_256(t *testing.T) {
	input := []byte("test")
	expected, _ := hex.DecodeString("9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08")

	alg := NewSHA2_256()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)

	input = []byte("Not your keys, not your coins")
	expected, _ = hex.DecodeString("52492e819216f36b747dd5da703a26601434604242fab27e8551e782a5111340")
	assert.Equal(t, Hash(expected), alg.ComputeHash(input))
}

// Sanity checks of SHA2-384
func TestSanitySha2_384(t *testing.T) {
	input := []byte("test")
	expected, _ := hex.DecodeString("768412320f7b0aa5812fce428dc4706b3cae50e02a64caa16a782249bfe8efc4b7ef1ccb126255d196047dfedf17a0a9")

	alg := NewSHA2_384()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)

	input = []byte("Not your keys, not your coins")
	expected, _ = hex.DecodeString("11e3e7ec0dc581878c35c6c807156553261db17e328cf87d37be0535f8458d7cc91574a23f4f3e5f9823c7aa3afff159")
	assert.Equal(t, Hash(expected), alg.ComputeHash(input))
}

// Sanity checks of SHA2-512
func TestSanitySha2_512(t *testing.T) {
	input := []byte("Not your keys, not your coins")
	expected, _ := hex.DecodeString("f0e9967581c0db4c8ec0ebb253a7ff8d8a1a6906bc1b760c23099cc5e4f7ea19" +
		"077357078a666b451ca232a4a70ca18daa4ed05add03020504dfdd931d546ffd")

	alg := NewSHA2_512()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of SHA3-224
// the empty input vector is taken from the NIST FIPS 202 examples
func TestSanitySha3_224(t *testing.T) {
	expected, _ := hex.DecodeString("6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7")

	alg := NewSHA3_224()
	hash := alg.ComputeHash(nil)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of SHA3-256
func TestSanitySha3_256(t *testing.T) {
	input := []byte("test")
	expected, _ := hex.DecodeString("36f028580bb02cc8272a9a020f4200e346e276ae664e45ee80745574e2f5ab80")

	alg := NewSHA3_256()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)

	expected, _ = hex.DecodeString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	assert.Equal(t, Hash(expected), alg.ComputeHash(nil))
}

// Sanity checks of SHA3-384
func TestSanitySha3_384(t *testing.T) {
	input := []byte("test")
	expected, _ := hex.DecodeString("e516dabb23b6e30026863543282780a3ae0dccf05551cf0295178d7ff0f1b41eecb9db3ff219007c4e097260d58621bd")

	alg := NewSHA3_384()
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of SHA3-512
// the empty input vector is taken from the NIST FIPS 202 examples
func TestSanitySha3_512(t *testing.T) {
	expected, _ := hex.DecodeString("a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6" +
		"15b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26")

	alg := NewSHA3_512()
	hash := alg.ComputeHash(nil)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of the legacy Keccak
// the empty input vectors are taken from the Keccak team's known answer tests
func TestSanityKeccak(t *testing.T) {
	cases := []struct {
		new      func() Hasher
		expected string
	}{
		{NewKeccak_224, "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd"},
		{NewKeccak_256, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{NewKeccak_384, "2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff"},
		{NewKeccak_512, "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304" +
			"c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"},
	}
	for _, c := range cases {
		alg := c.new()
		t.Run(alg.Algorithm().String(), func(t *testing.T) {
			expected, _ := hex.DecodeString(c.expected)
			assert.Equal(t, Hash(expected), alg.ComputeHash(nil))
		})
	}
}

// Sanity checks of SHAKE128
// the test vector is taken from the NIST FIPS 202 examples
func TestSanityShake128(t *testing.T) {
	expected, _ := hex.DecodeString("7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26")

	hash, err := SumSHAKE128(nil, 32)
	require.NoError(t, err)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of SHAKE256
// the test vector is taken from the NIST FIPS 202 examples
func TestSanityShake256(t *testing.T) {
	expected, _ := hex.DecodeString("46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be")

	hash, err := SumSHAKE256(nil, 64)
	require.NoError(t, err)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of cSHAKE-128
// the test vector is taken from the NIST document
// https://csrc.nist.gov/CSRC/media/Projects/Cryptographic-Standards-and-Guidelines/documents/examples/cSHAKE_samples.pdf
func TestSanityCShake128(t *testing.T) {
	input := []byte{0x00, 0x01, 0x02, 0x03}
	expected, _ := hex.DecodeString("c1c36925b6409a04f1b504fcbca9d82b4017277cb5ed2b2065fc1d3814d5aaf5")

	alg, err := NewCShake128(nil, []byte("Email Signature"), 32)
	require.NoError(t, err)
	hash := alg.ComputeHash(input)
	assert.Equal(t, Hash(expected), hash)
}

// Sanity checks of KMAC128
// the test vectors are taken from the NIST document
// https://csrc.nist.gov/CSRC/media/Projects/Cryptographic-Standards-and-Guidelines/documents/examples/Kmac_samples.pdf
func TestSanityKmac128(t *testing.T) {
	input := []byte{0x00, 0x01, 0x02, 0x03}
	expected := []string{
		"e5780b0d3ea6f7d3a429c5706aa43a00fadbd7d49628839e3187243f456ee14e",
		"3b1fba963cd8b0b59e8c1a6d71888b7143651af8ba0a7070c0979e2811324aa5",
	}
	customizers := [][]byte{
		nil,
		[]byte("My Tagged Application"),
	}
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(0x40 + i)
	}
	outputSize := 32

	for i, c := range customizers {
		mac, err := NewKMAC_128(key, c, outputSize)
		require.NoError(t, err)
		want, _ := hex.DecodeString(expected[i])
		assert.Equal(t, Hash(want), mac.ComputeHash(input))
	}

	// longer input, from the same document
	longInput := make([]byte, 200)
	for i := range longInput {
		longInput[i] = byte(i)
	}
	mac, err := NewKMAC_128(key, []byte("My Tagged Application"), outputSize)
	require.NoError(t, err)
	want, _ := hex.DecodeString("1f5b4e6cca02209e0dcb5ca635b89a15e271ecc760071dfd805faa38f9729230")
	assert.Equal(t, Hash(want), mac.ComputeHash(longInput))
}

// Sanity checks of BLAKE2b
func TestSanityBlake2b(t *testing.T) {
	input := []byte("Not your keys, not your coins")
	cases := []struct {
		new      func() Hasher
		expected string
	}{
		{NewBlake2b_256, "cda6498e2f8971e84ed5682e3d479ccc2cce7f37ac929ca0b041b2dd06a9f3cb"},
		{NewBlake2b_384, "5f030477925e9129f9b8eff9882904f44f653beff821ca4868a7be461c4582b33dd77b9e919afe1c3bed4b8f3c5dde53"},
		{NewBlake2b_512, "c2e0fe8cb783437c8f368948c47a9c7c27a3b5987a2d1b3bab483dd6f64cd120" +
			"7d7262b535fe3f86ad0c5f334e550764497c11d5bd6a442a9c2e6aabf931c0ab"},
	}
	for _, c := range cases {
		alg := c.new()
		t.Run(alg.Algorithm().String(), func(t *testing.T) {
			expected, _ := hex.DecodeString(c.expected)
			assert.Equal(t, Hash(expected), alg.ComputeHash(input))
		})
	}
}

// TestHashersAPI tests the expected definition of the hashers APIs.
func TestHashersAPI(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	key := []byte("0123456789abcdef")
	hashers := []struct {
		algo HashingAlgorithm
		size int
		new  func() Hasher
	}{
		{SHA2_224, HashLenSha2_224, NewSHA2_224},
		{SHA2_256, HashLenSha2_256, NewSHA2_256},
		{SHA2_384, HashLenSha2_384, NewSHA2_384},
		{SHA2_512, HashLenSha2_512, NewSHA2_512},
		{SHA3_224, HashLenSha3_224, NewSHA3_224},
		{SHA3_256, HashLenSha3_256, NewSHA3_256},
		{SHA3_384, HashLenSha3_384, NewSHA3_384},
		{SHA3_512, HashLenSha3_512, NewSHA3_512},
		{Keccak_224, HashLenKeccak_224, NewKeccak_224},
		{Keccak_256, HashLenKeccak_256, NewKeccak_256},
		{Keccak_384, HashLenKeccak_384, NewKeccak_384},
		{Keccak_512, HashLenKeccak_512, NewKeccak_512},
		{Blake2b_256, HashLenBlake2b_256, NewBlake2b_256},
		{Blake2b_384, HashLenBlake2b_384, NewBlake2b_384},
		{Blake2b_512, HashLenBlake2b_512, NewBlake2b_512},
		{SHAKE_128, 40, func() Hasher {
			h, err := NewSHAKE128(40)
			require.NoError(t, err)
			return h
		}},
		{SHAKE_256, 72, func() Hasher {
			h, err := NewSHAKE256(72)
			require.NoError(t, err)
			return h
		}},
		{CSHAKE_128, 32, func() Hasher {
			h, err := NewCShake128(nil, []byte("test custom"), 32)
			require.NoError(t, err)
			return h
		}},
		{CSHAKE_256, 64, func() Hasher {
			h, err := NewCShake256(nil, []byte("test custom"), 64)
			require.NoError(t, err)
			return h
		}},
		{KMAC128, 32, func() Hasher {
			h, err := NewKMAC_128(key, []byte("test custom"), 32)
			require.NoError(t, err)
			return h
		}},
	}

	for _, c := range hashers {
		t.Run(c.algo.String(), func(t *testing.T) {
			data := make([]byte, r.Intn(600))
			r.Read(data)

			h := c.new()
			assert.Equal(t, c.algo, h.Algorithm())
			assert.Equal(t, c.size, h.Size())
			assert.Greater(t, h.BlockSize(), 0)

			// one-shot hashing
			oneShot := h.ComputeHash(data)
			assert.Len(t, []byte(oneShot), c.size)
			assert.Equal(t, oneShot, h.ComputeHash(data))

			// incremental hashing across an arbitrary split
			split := r.Intn(len(data) + 1)
			h.Reset()
			_, _ = h.Write(data[:split])
			_, _ = h.Write(data[split:])
			assert.Equal(t, oneShot, h.SumHash())

			// SumHash does not disturb the state, writing can continue
			h.Reset()
			_, _ = h.Write(data[:split])
			_ = h.SumHash()
			_, _ = h.Write(data[split:])
			assert.Equal(t, oneShot, h.SumHash())

			// Reset returns to the initial state
			h.Reset()
			assert.Equal(t, c.new().SumHash(), h.SumHash())
		})
	}
}

// TestSha2 compares SHA2 to the Go standard library implementations.
func TestSha2(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	t.Run("SHA2_224", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha256.Sum224(value)

			hash := NewSHA2_224().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA2_256", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha256.Sum256(value)

			hash := NewSHA2_256().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA2_384", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha512.Sum384(value)

			hash := NewSHA2_384().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA2_512", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha512.Sum512(value)

			hash := NewSHA2_512().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})
}

// TestSha3 compares SHA3 to the x/crypto implementation. The input sizes
// sweep over several sponge blocks to cover the padding boundaries.
func TestSha3(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	t.Run("SHA3_224", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha3.Sum224(value)

			hash := NewSHA3_224().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA3_256", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha3.Sum256(value)

			hash := NewSHA3_256().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA3_384", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha3.Sum384(value)

			hash := NewSHA3_384().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})

	t.Run("SHA3_512", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			expected := sha3.Sum512(value)

			hash := NewSHA3_512().ComputeHash(value)
			assert.Equal(t, expected[:], []byte(hash))
		}
	})
}

// TestKeccak compares the legacy Keccak to the x/crypto implementation,
// which only covers the 256 and 512 output sizes.
func TestKeccak(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	t.Run("Keccak_256", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			ref := sha3.NewLegacyKeccak256()
			_, _ = ref.Write(value)

			hash := NewKeccak_256().ComputeHash(value)
			assert.Equal(t, ref.Sum(nil), []byte(hash))
		}
	})

	t.Run("Keccak_512", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			ref := sha3.NewLegacyKeccak512()
			_, _ = ref.Write(value)

			hash := NewKeccak_512().ComputeHash(value)
			assert.Equal(t, ref.Sum(nil), []byte(hash))
		}
	})
}

// TestShake compares SHAKE to the x/crypto implementation, with random
// output sizes.
func TestShake(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	t.Run("SHAKE_128", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			size := r.Intn(512) + 1
			expected := make([]byte, size)
			sha3.ShakeSum128(expected, value)

			hash, err := SumSHAKE128(value, size)
			require.NoError(t, err)
			assert.Equal(t, expected, []byte(hash))
		}
	})

	t.Run("SHAKE_256", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			value := make([]byte, i%400)
			r.Read(value)
			size := r.Intn(512) + 1
			expected := make([]byte, size)
			sha3.ShakeSum256(expected, value)

			hash, err := SumSHAKE256(value, size)
			require.NoError(t, err)
			assert.Equal(t, expected, []byte(hash))
		}
	})
}

// TestCShake compares cSHAKE to the x/crypto implementation, with random
// function names, customizers and output sizes. Empty parameters cover the
// degeneration into plain SHAKE.
func TestCShake(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	news := []struct {
		name string
		ref  func(n, s []byte) sha3.ShakeHash
		new  func(n, s []byte, size int) (ShakeHash, error)
	}{
		{"CSHAKE_128", sha3.NewCShake128, NewCShake128},
		{"CSHAKE_256", sha3.NewCShake256, NewCShake256},
	}

	for _, c := range news {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				n := make([]byte, r.Intn(20))
				s := make([]byte, r.Intn(20))
				r.Read(n)
				r.Read(s)
				value := make([]byte, i%300)
				r.Read(value)
				size := r.Intn(256) + 1

				ref := c.ref(n, s)
				_, _ = ref.Write(value)
				expected := make([]byte, size)
				_, _ = ref.Read(expected)

				h, err := c.new(n, s, size)
				require.NoError(t, err)
				assert.Equal(t, expected, []byte(h.ComputeHash(value)))
			}
		})
	}
}

// TestBlake2b compares BLAKE2b to the x/crypto one-shot functions.
func TestBlake2b(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("math rand seed is %d", seed)

	for i := 0; i < 1000; i++ {
		value := make([]byte, i%400)
		r.Read(value)

		expected256 := blake2b.Sum256(value)
		assert.Equal(t, expected256[:], []byte(NewBlake2b_256().ComputeHash(value)))
		expected384 := blake2b.Sum384(value)
		assert.Equal(t, expected384[:], []byte(NewBlake2b_384().ComputeHash(value)))
		expected512 := blake2b.Sum512(value)
		assert.Equal(t, expected512[:], []byte(NewBlake2b_512().ComputeHash(value)))
	}
}

// TestKmac128 covers the KMAC parameter handling and the MAC separation
// properties.
func TestKmac128(t *testing.T) {
	key := []byte("0123456789abcdef")
	data := []byte("data to authenticate")

	t.Run("short key is rejected", func(t *testing.T) {
		_, err := NewKMAC_128(key[:KmacMinKeyLen-1], nil, 32)
		assert.Error(t, err)
		assert.True(t, IsInvalidParamsError(err))
	})

	t.Run("output size bounds", func(t *testing.T) {
		_, err := NewKMAC_128(key, nil, 0)
		assert.Error(t, err)
		_, err = NewKMAC_128(key, nil, maxXOFOutputLen+1)
		assert.Error(t, err)
		_, err = NewKMAC_128(key, nil, maxXOFOutputLen)
		assert.NoError(t, err)
	})

	t.Run("key separation", func(t *testing.T) {
		mac1, err := NewKMAC_128(key, nil, 32)
		require.NoError(t, err)
		mac2, err := NewKMAC_128([]byte("0123456789abcdeg"), nil, 32)
		require.NoError(t, err)
		assert.NotEqual(t, mac1.ComputeHash(data), mac2.ComputeHash(data))
	})

	t.Run("customizer separation", func(t *testing.T) {
		mac1, err := NewKMAC_128(key, []byte("tag A"), 32)
		require.NoError(t, err)
		mac2, err := NewKMAC_128(key, []byte("tag B"), 32)
		require.NoError(t, err)
		assert.NotEqual(t, mac1.ComputeHash(data), mac2.ComputeHash(data))
	})

	t.Run("output length separation", func(t *testing.T) {
		// the output length takes part in the KMAC computation, unlike
		// plain SHAKE where a longer output extends a shorter one
		mac32, err := NewKMAC_128(key, nil, 32)
		require.NoError(t, err)
		mac33, err := NewKMAC_128(key, nil, 33)
		require.NoError(t, err)
		assert.NotEqual(t, mac32.ComputeHash(data), mac33.ComputeHash(data)[:32])
	})
}

// TestXofParams covers the output size bounds of the extendable-output
// constructors.
func TestXofParams(t *testing.T) {
	for _, size := range []int{-1, 0, maxXOFOutputLen + 1} {
		_, err := NewSHAKE128(size)
		assert.True(t, IsInvalidParamsError(err))
		_, err = NewSHAKE256(size)
		assert.True(t, IsInvalidParamsError(err))
		_, err = NewCShake128(nil, []byte("c"), size)
		assert.True(t, IsInvalidParamsError(err))
	}

	h, err := NewSHAKE128(maxXOFOutputLen)
	require.NoError(t, err)
	assert.Equal(t, maxXOFOutputLen, h.Size())
}

// TestNewHasher covers the generic constructor.
func TestNewHasher(t *testing.T) {
	fixed := []HashingAlgorithm{
		SHA2_224, SHA2_256, SHA2_384, SHA2_512,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		Keccak_224, Keccak_256, Keccak_384, Keccak_512,
		Blake2b_256, Blake2b_384, Blake2b_512,
	}
	for _, algo := range fixed {
		h, err := NewHasher(algo)
		require.NoError(t, err)
		assert.Equal(t, algo, h.Algorithm())
	}

	// the parameterized algorithms have dedicated constructors
	parameterized := []HashingAlgorithm{SHAKE_128, SHAKE_256, CSHAKE_128, CSHAKE_256, KMAC128}
	for _, algo := range parameterized {
		_, err := NewHasher(algo)
		assert.Error(t, err)
		assert.True(t, IsInvalidParamsError(err))
	}

	_, err := NewHasher(UnknownHashingAlgorithm)
	assert.Error(t, err)
}

// TestWriteAfterRead checks that absorbing after squeezing is rejected.
func TestWriteAfterRead(t *testing.T) {
	h, err := NewSHAKE128(32)
	require.NoError(t, err)
	_, _ = h.Write([]byte("absorb me"))
	out := make([]byte, 16)
	_, _ = h.Read(out)

	assert.Panics(t, func() {
		_, _ = h.Write([]byte("too late"))
	})
}

// TestShakeRead checks that reading in chunks streams the same bytes as the
// fixed-size outputs, across block boundaries.
func TestShakeRead(t *testing.T) {
	data := []byte("extendable output")

	expected, err := SumSHAKE256(data, 500)
	require.NoError(t, err)

	h, err := NewSHAKE256(32)
	require.NoError(t, err)
	_, _ = h.Write(data)
	streamed := make([]byte, 500)
	for read := 0; read < len(streamed); {
		n, err := h.Read(streamed[read : read+50])
		require.NoError(t, err)
		read += n
	}
	assert.Equal(t, []byte(expected), streamed)

	// Clone of a partly squeezed state continues the same stream
	_, _ = h.Read(streamed[:17])
	dup := h.Clone()
	a := make([]byte, 41)
	b := make([]byte, 41)
	_, _ = h.Read(a)
	_, _ = dup.Read(b)
	assert.Equal(t, a, b)
}

// TestHasherChunking checks that hashing is invariant under input chunking.
func TestHasherChunking(t *testing.T) {
	rapid.Check(t, func(tr *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 1000).Draw(tr, "data")

		h := NewSHA3_256()
		for rest := data; len(rest) > 0; {
			n := rapid.IntRange(1, len(rest)).Draw(tr, "chunk")
			_, _ = h.Write(rest[:n])
			rest = rest[n:]
		}
		assert.Equal(tr, NewSHA3_256().ComputeHash(data), h.SumHash())
	})
}

func BenchmarkSha2_256(b *testing.B) {
	a := []byte("Bench me!")
	alg := NewSHA2_256()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alg.ComputeHash(a)
	}
}

func BenchmarkSha3_256(b *testing.B) {
	a := []byte("Bench me!")
	alg := NewSHA3_256()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alg.ComputeHash(a)
	}
}

func BenchmarkKeccak_256(b *testing.B) {
	a := []byte("Bench me!")
	alg := NewKeccak_256()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alg.ComputeHash(a)
	}
}

func BenchmarkKmac128(b *testing.B) {
	a := []byte("Bench me!")
	alg, _ := NewKMAC_128([]byte("0123456789abcdef"), nil, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alg.ComputeHash(a)
	}
}
