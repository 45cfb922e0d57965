package hash

import (
	"bytes"
	"encoding/binary"
)

// Serialized sponge contexts use a fixed little-endian layout:
//
//	bytes 0..3    magic "cxh1"
//	byte  4       algorithm identifier
//	byte  5       domain separation byte
//	byte  6       sponge rate in bytes
//	byte  7       direction, 0 absorbing or 1 squeezing
//	bytes 8..11   configured output length, uint32
//	byte  12      length of the pending buffer
//	...           pending buffer, unabsorbed input or unread output
//	...           the 25 sponge lanes, 200 bytes
//	...           length of the construction parameters, uint16
//	...           construction parameters, empty outside cSHAKE and KMAC
//
// The pending buffer holds unabsorbed input when the direction is absorbing,
// and the unread remainder of the current output block when squeezing. For
// cSHAKE the construction parameters are the encoded function name and
// customization string. KMAC carries both its cSHAKE block and its key block,
// the former prefixed with its own uint16 length.
const (
	// ctxMagic identifies the serialized sponge context format.
	ctxMagic = "cxh1"

	ctxHeaderLen = 13
	ctxStateLen  = 200
	ctxMinLen    = ctxHeaderLen + ctxStateLen + 2
)

// maxInitBlockLen caps the encoded construction parameters of cSHAKE and
// KMAC, so that serialized contexts stay bounded and the key and
// customization blocks always fit their length fields.
const maxInitBlockLen = 1 << 12

// spongeParams ties a sponge-based algorithm to the parameters a valid
// context of that algorithm must carry.
type spongeParams struct {
	rate      int
	dsbyte    byte
	fixedLen  int  // output length, zero for the extendable-output algorithms
	needsInit bool // whether the context carries construction parameters
}

var spongeAlgos = map[HashingAlgorithm]spongeParams{
	SHA3_224:   {rate: 144, dsbyte: dsbyteSHA3, fixedLen: HashLenSha3_224},
	SHA3_256:   {rate: 136, dsbyte: dsbyteSHA3, fixedLen: HashLenSha3_256},
	SHA3_384:   {rate: 104, dsbyte: dsbyteSHA3, fixedLen: HashLenSha3_384},
	SHA3_512:   {rate: 72, dsbyte: dsbyteSHA3, fixedLen: HashLenSha3_512},
	Keccak_224: {rate: 144, dsbyte: dsbyteKeccak, fixedLen: HashLenKeccak_224},
	Keccak_256: {rate: 136, dsbyte: dsbyteKeccak, fixedLen: HashLenKeccak_256},
	Keccak_384: {rate: 104, dsbyte: dsbyteKeccak, fixedLen: HashLenKeccak_384},
	Keccak_512: {rate: 72, dsbyte: dsbyteKeccak, fixedLen: HashLenKeccak_512},
	SHAKE_128:  {rate: 168, dsbyte: dsbyteShake},
	SHAKE_256:  {rate: 136, dsbyte: dsbyteShake},
	CSHAKE_128: {rate: 168, dsbyte: dsbyteCShake, needsInit: true},
	CSHAKE_256: {rate: 136, dsbyte: dsbyteCShake, needsInit: true},
	KMAC128:    {rate: 168, dsbyte: dsbyteCShake, needsInit: true},
}

// spongeContext is the decoded form of a serialized sponge context.
type spongeContext struct {
	algo      HashingAlgorithm
	dsbyte    byte
	rate      int
	direction spongeDirection
	outputLen int
	buf       []byte
	a         [25]uint64
	init      []byte
}

// encodeContext serializes the sponge state followed by the given
// construction parameters.
func (d *state) encodeContext(init []byte) []byte {
	out := make([]byte, 0, ctxMinLen+len(d.buf)+len(init))
	out = append(out, ctxMagic...)
	out = append(out, byte(d.algo), d.dsbyte, byte(d.rate), byte(d.state))
	out = binary.LittleEndian.AppendUint32(out, uint32(d.outputLen))
	out = append(out, byte(len(d.buf)))
	out = append(out, d.buf...)
	for _, lane := range d.a {
		out = binary.LittleEndian.AppendUint64(out, lane)
	}
	out = binary.LittleEndian.AppendUint16(out, uint16(len(init)))
	return append(out, init...)
}

// MarshalBinary snapshots the sponge context.
// It never returns an error.
func (d *state) MarshalBinary() ([]byte, error) {
	return d.encodeContext(nil), nil
}

// MarshalBinary snapshots the cSHAKE context, including the encoded
// function name and customization string.
// It never returns an error.
func (c *cshakeState) MarshalBinary() ([]byte, error) {
	return c.state.encodeContext(c.initBlock), nil
}

// MarshalBinary snapshots the KMAC context, including the encoded
// construction parameters and key.
// It never returns an error.
func (k *kmac) MarshalBinary() ([]byte, error) {
	ext := make([]byte, 0, 2+len(k.initBlock)+len(k.keyBlock))
	ext = binary.LittleEndian.AppendUint16(ext, uint16(len(k.initBlock)))
	ext = append(ext, k.initBlock...)
	ext = append(ext, k.keyBlock...)
	return k.state.encodeContext(ext), nil
}

// MarshalHasher snapshots the context of a sponge-based hasher so that it
// can be rebuilt later with RestoreHasher, possibly in another process.
// The returned error is non-nil for the hashers that do not support
// context serialization, currently SHA-2 and BLAKE2b.
func MarshalHasher(h Hasher) ([]byte, error) {
	switch v := h.(type) {
	case *state:
		return v.MarshalBinary()
	case *cshakeState:
		return v.MarshalBinary()
	case *kmac:
		return v.MarshalBinary()
	default:
		return nil, invalidParamsErrorf("%s does not support context serialization", h.Algorithm())
	}
}

// decodeContext parses a serialized sponge context. It checks the framing
// only, validate checks the decoded values against the claimed algorithm.
func decodeContext(data []byte) (*spongeContext, error) {
	if len(data) < ctxMinLen {
		return nil, invalidContextErrorf("context is %d bytes, the minimum is %d", len(data), ctxMinLen)
	}
	if string(data[:len(ctxMagic)]) != ctxMagic {
		return nil, invalidContextErrorf("unknown context header %x", data[:len(ctxMagic)])
	}
	c := &spongeContext{
		algo:      HashingAlgorithm(data[4]),
		dsbyte:    data[5],
		rate:      int(data[6]),
		direction: spongeDirection(data[7]),
		outputLen: int(binary.LittleEndian.Uint32(data[8:12])),
	}
	bufLen := int(data[12])
	if len(data) < ctxMinLen+bufLen {
		return nil, invalidContextErrorf("context of %d bytes is truncated", len(data))
	}
	off := ctxHeaderLen
	c.buf = bytes.Clone(data[off : off+bufLen])
	off += bufLen
	for i := range c.a {
		c.a[i] = binary.LittleEndian.Uint64(data[off : off+8])
		off += 8
	}
	initLen := int(binary.LittleEndian.Uint16(data[off : off+2]))
	off += 2
	if len(data) != off+initLen {
		return nil, invalidContextErrorf("context length %d does not match its content", len(data))
	}
	c.init = bytes.Clone(data[off:])
	return c, nil
}

// validate checks the decoded context against the parameters of the
// algorithm it claims, and the buffer against the sponge direction.
func (c *spongeContext) validate() error {
	p, ok := spongeAlgos[c.algo]
	if !ok {
		return invalidContextErrorf("algorithm %d is not a supported sponge algorithm", c.algo)
	}
	if c.dsbyte != p.dsbyte {
		return invalidContextErrorf("domain separation byte %#x does not match %s", c.dsbyte, c.algo)
	}
	if c.rate != p.rate {
		return invalidContextErrorf("rate %d does not match %s", c.rate, c.algo)
	}
	if p.fixedLen != 0 && c.outputLen != p.fixedLen {
		return invalidContextErrorf("output length %d does not match %s", c.outputLen, c.algo)
	}
	if p.fixedLen == 0 && (c.outputLen <= 0 || c.outputLen > maxXOFOutputLen) {
		return invalidContextErrorf("output length %d is not between 1 and %d", c.outputLen, maxXOFOutputLen)
	}
	switch c.direction {
	case spongeAbsorbing:
		// an absorbing buffer at the rate would have been permuted already
		if len(c.buf) >= c.rate {
			return invalidContextErrorf("absorbing context buffers %d bytes, the rate is %d", len(c.buf), c.rate)
		}
	case spongeSqueezing:
		if len(c.buf) == 0 || len(c.buf) > c.rate {
			return invalidContextErrorf("squeezing context buffers %d bytes, the rate is %d", len(c.buf), c.rate)
		}
	default:
		return invalidContextErrorf("unknown sponge direction %d", c.direction)
	}
	if !p.needsInit {
		if len(c.init) != 0 {
			return invalidContextErrorf("%s context carries unexpected construction parameters", c.algo)
		}
		return nil
	}
	if c.algo == KMAC128 {
		initBlock, keyBlock, err := splitKMACInit(c.init)
		if err != nil {
			return err
		}
		if len(initBlock) > maxInitBlockLen || len(keyBlock) > maxInitBlockLen {
			return invalidContextErrorf("KMAC construction parameters exceed %d bytes", maxInitBlockLen)
		}
		return nil
	}
	if len(c.init) == 0 {
		return invalidContextErrorf("%s context carries no construction parameters", c.algo)
	}
	if len(c.init) > maxInitBlockLen {
		return invalidContextErrorf("%s construction parameters exceed %d bytes", c.algo, maxInitBlockLen)
	}
	return nil
}

// splitKMACInit splits a KMAC context's construction parameters into the
// cSHAKE block and the key block.
func splitKMACInit(init []byte) (initBlock, keyBlock []byte, err error) {
	if len(init) < 2 {
		return nil, nil, invalidContextErrorf("KMAC context carries no construction parameters")
	}
	n := int(binary.LittleEndian.Uint16(init[:2]))
	if n == 0 || 2+n >= len(init) {
		return nil, nil, invalidContextErrorf("KMAC construction parameters are malformed")
	}
	return init[2 : 2+n], init[2+n:], nil
}

// IsValidSHA3Context reports whether data is a well-formed serialized
// context of one of the fixed-output sponge algorithms, SHA-3 or the legacy
// Keccak. The check is structural, it does not authenticate the snapshot.
func IsValidSHA3Context(data []byte) bool {
	c, err := decodeContext(data)
	if err != nil || c.validate() != nil {
		return false
	}
	return isSHA3Family(c.algo)
}

// IsValidShakeContext reports whether data is a well-formed serialized
// context of one of the extendable-output constructions, SHAKE, cSHAKE or
// KMAC. The check is structural, it does not authenticate the snapshot.
func IsValidShakeContext(data []byte) bool {
	c, err := decodeContext(data)
	if err != nil || c.validate() != nil {
		return false
	}
	return isShakeFamily(c.algo)
}

func isSHA3Family(algo HashingAlgorithm) bool {
	switch algo {
	case SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		Keccak_224, Keccak_256, Keccak_384, Keccak_512:
		return true
	}
	return false
}

func isShakeFamily(algo HashingAlgorithm) bool {
	switch algo {
	case SHAKE_128, SHAKE_256, CSHAKE_128, CSHAKE_256, KMAC128:
		return true
	}
	return false
}

// RestoreHasher rebuilds a sponge-based hasher from a serialized context
// produced by MarshalBinary or MarshalHasher. The restored hasher resumes
// exactly where the snapshot was taken, in the absorbing or the squeezing
// phase. The context is validated first and an invalidContextError is
// returned when it is malformed or inconsistent, see IsInvalidContextError.
func RestoreHasher(data []byte) (Hasher, error) {
	c, err := decodeContext(data)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	d := &state{
		a:         c.a,
		rate:      c.rate,
		dsbyte:    c.dsbyte,
		outputLen: c.outputLen,
		state:     c.direction,
		algo:      c.algo,
	}
	// Point the buffer into the restored state's own storage. Like clone,
	// a squeezing buffer occupies the tail of the current output block.
	if c.direction == spongeAbsorbing {
		d.buf = d.storage.asBytes()[:len(c.buf)]
	} else {
		d.buf = d.storage.asBytes()[d.rate-len(c.buf) : d.rate]
	}
	copy(d.buf, c.buf)

	switch c.algo {
	case CSHAKE_128, CSHAKE_256:
		return &cshakeState{state: d, initBlock: c.init}, nil
	case KMAC128:
		initBlock, keyBlock, err := splitKMACInit(c.init)
		if err != nil {
			return nil, err
		}
		return &kmac{
			cshakeState: &cshakeState{state: d, initBlock: bytes.Clone(initBlock)},
			keyBlock:    bytes.Clone(keyBlock),
		}, nil
	default:
		return d, nil
	}
}
