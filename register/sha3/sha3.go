/*
Package sha3 registers the sponge constructions of this module with the
multihash registry.

It has no purpose except to perform that registration and is meant to be
used as a side-effecting import, e.g.

	import (
		_ "github.com/cxkit/crypto/register/sha3"
	)

It covers the sha3 indicator codes together with the codes known as
"shake" and "keccak". The hashers implement the standard hash.Hash
interface directly, the extendable-output functions are fixed to the
conventional double-width output of their security level.
*/
package sha3

import (
	"hash"

	multihash "github.com/multiformats/go-multihash/core"

	cxhash "github.com/cxkit/crypto/hash"
)

func init() {
	multihash.Register(0x14, func() hash.Hash { return cxhash.NewSHA3_512() })
	multihash.Register(0x15, func() hash.Hash { return cxhash.NewSHA3_384() })
	multihash.Register(0x16, func() hash.Hash { return cxhash.NewSHA3_256() })
	multihash.Register(0x17, func() hash.Hash { return cxhash.NewSHA3_224() })
	multihash.Register(0x18, newShake(cxhash.NewSHAKE128, 128/4))
	multihash.Register(0x19, newShake(cxhash.NewSHAKE256, 256/4))
	multihash.Register(0x1a, func() hash.Hash { return cxhash.NewKeccak_224() })
	multihash.Register(0x1b, func() hash.Hash { return cxhash.NewKeccak_256() })
	multihash.Register(0x1c, func() hash.Hash { return cxhash.NewKeccak_384() })
	multihash.Register(0x1d, func() hash.Hash { return cxhash.NewKeccak_512() })
}

// newShake pins an extendable-output function to the output size its
// indicator code implies.
func newShake(constructor func(int) (cxhash.ShakeHash, error), size int) func() hash.Hash {
	return func() hash.Hash {
		h, err := constructor(size)
		if err != nil {
			panic(err)
		}
		return h
	}
}
