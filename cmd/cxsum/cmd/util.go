package cmd

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cxkit/crypto/hash"
	"github.com/cxkit/crypto/nvm"
)

// session is the persisted record of a resumable hashing session.
type session struct {
	Algo     string
	Size     int
	Context  []byte
	Absorbed uint64
	Created  time.Time
}

func openStore() *nvm.Store {
	store, err := nvm.Open(log, flagStateDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", flagStateDir).Msg("could not open the state directory")
	}
	return store
}

// hashParams decodes the key and customizer flags.
func hashParams() (key []byte, customizer []byte) {
	key, err := hex.DecodeString(flagKey)
	if err != nil {
		log.Fatal().Err(err).Msg("could not decode --key, expecting hex")
	}
	return key, []byte(flagCustomizer)
}

// newHasher builds a hasher for a catalog name. A size of 0 selects the
// double-width output conventional for the extendable-output algorithms.
func newHasher(name string, size int, key []byte, customizer []byte) (hash.Hasher, error) {
	switch name {
	case "sha2-224":
		return hash.NewSHA2_224(), nil
	case "sha2-256":
		return hash.NewSHA2_256(), nil
	case "sha2-384":
		return hash.NewSHA2_384(), nil
	case "sha2-512":
		return hash.NewSHA2_512(), nil
	case "sha3-224":
		return hash.NewSHA3_224(), nil
	case "sha3-256":
		return hash.NewSHA3_256(), nil
	case "sha3-384":
		return hash.NewSHA3_384(), nil
	case "sha3-512":
		return hash.NewSHA3_512(), nil
	case "keccak-224":
		return hash.NewKeccak_224(), nil
	case "keccak-256":
		return hash.NewKeccak_256(), nil
	case "keccak-384":
		return hash.NewKeccak_384(), nil
	case "keccak-512":
		return hash.NewKeccak_512(), nil
	case "blake2b-256":
		return hash.NewBlake2b_256(), nil
	case "blake2b-384":
		return hash.NewBlake2b_384(), nil
	case "blake2b-512":
		return hash.NewBlake2b_512(), nil
	case "shake-128":
		return hash.NewSHAKE128(orDefault(size, 32))
	case "shake-256":
		return hash.NewSHAKE256(orDefault(size, 64))
	case "cshake-128":
		return hash.NewCShake128(nil, customizer, orDefault(size, 32))
	case "cshake-256":
		return hash.NewCShake256(nil, customizer, orDefault(size, 64))
	case "kmac-128":
		if len(key) == 0 {
			return nil, fmt.Errorf("kmac-128 requires --key")
		}
		return hash.NewKMAC_128(key, customizer, orDefault(size, 32))
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func orDefault(size int, def int) int {
	if size == 0 {
		return def
	}
	return size
}
