// Package random provides deterministic pseudo-random generators seeded
// with secret inputs, built by squeezing an extendable-output hash.
//
// The generators are deterministic: two instances built with the same seed
// and customizer generate the same stream. They are not crypto-secure
// sources of entropy for key generation unless the seed itself is sampled
// from a secure source.
package random

import (
	"fmt"

	"github.com/cxkit/crypto/hash"
)

const (
	// Shake256SeedLen is the seed length required by the SHAKE-256 based PRG, 32 bytes.
	Shake256SeedLen = 32
	// Shake256CustomizerMaxLen is the maximum length of the customizer
	// accepted by the SHAKE-256 based PRG, 32 bytes.
	Shake256CustomizerMaxLen = 32
)

// shake256Core is a randCore that squeezes a SHAKE-256 sponge. The seed
// and the customizer are absorbed once at construction, every Read then
// continues squeezing the same sponge.
type shake256Core struct {
	xof hash.ShakeHash
}

// shake256PRG is a PRG implementation based on SHAKE-256.
type shake256PRG struct {
	genericPRG
	core *shake256Core
}

// Read pulls random bytes from the sponge output stream.
//
// No error is expected, the sponge squeezes indefinitely.
func (c *shake256Core) Read(buffer []byte) {
	_, _ = c.xof.Read(buffer)
}

// NewShake256PRG returns a new deterministic PRG that squeezes a SHAKE-256
// sponge seeded with the input seed.
//
// The seed fixes the initial state of the PRG and must be Shake256SeedLen
// bytes. The customizer is a domain separator: generators with the same seed
// and distinct customizers produce independent streams. It can be empty and
// is limited to Shake256CustomizerMaxLen bytes.
// The returned PRG is not thread-safe.
func NewShake256PRG(seed []byte, customizer []byte) (Rand, error) {
	if len(seed) != Shake256SeedLen {
		return nil, fmt.Errorf("seed should be exactly %d bytes, got %d", Shake256SeedLen, len(seed))
	}
	if len(customizer) > Shake256CustomizerMaxLen {
		return nil, fmt.Errorf("customizer should not exceed %d bytes, got %d", Shake256CustomizerMaxLen, len(customizer))
	}

	// the output size parameter only sizes the fixed-size digest methods,
	// which the PRG never uses
	xof, err := hash.NewSHAKE256(32)
	if err != nil {
		return nil, fmt.Errorf("building the sponge failed: %w", err)
	}
	// Absorb the customizer length first so that streams of distinct
	// customizers can never collide, whatever their contents.
	_, _ = xof.Write([]byte{byte(len(customizer))})
	_, _ = xof.Write(customizer)
	_, _ = xof.Write(seed)

	core := &shake256Core{xof: xof}
	return &shake256PRG{
		genericPRG: genericPRG{randCore: core},
		core:       core,
	}, nil
}

// State returns a snapshot of the PRG: the serialized context of the
// underlying sponge. Any stream position is captured, including before the
// first Read. The snapshot can be passed to RestoreShake256PRG to resume
// the exact same stream, possibly in another process.
func (p *shake256PRG) State() []byte {
	state, _ := p.core.xof.MarshalBinary()
	return state
}

// RestoreShake256PRG rebuilds a SHAKE-256 based PRG from a state snapshot
// returned by State.
//
// The restored PRG continues the output stream exactly where the snapshot
// was taken. The returned error is non-nil if the state does not describe
// a valid SHAKE-256 context.
func RestoreShake256PRG(stateBytes []byte) (Rand, error) {
	h, err := hash.RestoreHasher(stateBytes)
	if err != nil {
		return nil, fmt.Errorf("restoring the PRG state failed: %w", err)
	}
	if h.Algorithm() != hash.SHAKE_256 {
		return nil, fmt.Errorf("state describes a %s context, SHAKE_256 is expected", h.Algorithm())
	}
	xof, ok := h.(hash.ShakeHash)
	if !ok {
		return nil, fmt.Errorf("state does not restore to an extendable-output context")
	}

	core := &shake256Core{xof: xof}
	return &shake256PRG{
		genericPRG: genericPRG{randCore: core},
		core:       core,
	}, nil
}
