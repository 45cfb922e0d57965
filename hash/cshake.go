package hash

import "encoding/binary"

// cshakeState wraps the plain sponge with the function name and
// customization string encoding of NIST SP 800-185.
type cshakeState struct {
	*state

	// initBlock holds the encodings of the function name and the
	// customization string. It is absorbed again after each Reset.
	initBlock []byte
}

// NewCShake128 returns a new cSHAKE128 variable-output-length hasher.
// functionName is a name reserved by NIST for derived functions, it must be
// left empty when building a custom function. customizer is the user-chosen
// customization string, generators with distinct customizers produce
// independent digests. outputSize is the output size of Sum, SumHash and
// ComputeHash in bytes.
// When both functionName and customizer are empty, the returned hasher is a
// plain SHAKE128, as the NIST specification defines.
func NewCShake128(functionName []byte, customizer []byte, outputSize int) (ShakeHash, error) {
	return newCShake(functionName, customizer, 168, outputSize, CSHAKE_128)
}

// NewCShake256 returns a new cSHAKE256 variable-output-length hasher.
// The parameters follow NewCShake128. When both functionName and customizer
// are empty, the returned hasher is a plain SHAKE256.
func NewCShake256(functionName []byte, customizer []byte, outputSize int) (ShakeHash, error) {
	return newCShake(functionName, customizer, 136, outputSize, CSHAKE_256)
}

func newCShake(n, s []byte, rate, outputSize int, algo HashingAlgorithm) (ShakeHash, error) {
	if outputSize <= 0 || outputSize > maxXOFOutputLen {
		return nil, invalidParamsErrorf("output size must be between 1 and %d, got %d", maxXOFOutputLen, outputSize)
	}
	// cSHAKE with an empty function name and an empty customization string
	// is SHAKE by definition.
	if len(n) == 0 && len(s) == 0 {
		plain := SHAKE_128
		if algo == CSHAKE_256 {
			plain = SHAKE_256
		}
		return &state{
			algo:      plain,
			rate:      rate,
			outputLen: outputSize,
			dsbyte:    dsbyteShake,
		}, nil
	}

	c := &cshakeState{
		state: &state{
			algo:      algo,
			rate:      rate,
			outputLen: outputSize,
			dsbyte:    dsbyteCShake,
		},
	}
	c.initBlock = make([]byte, 0, 9*2+len(n)+len(s))
	c.initBlock = append(c.initBlock, encodeString(n)...)
	c.initBlock = append(c.initBlock, encodeString(s)...)
	if len(c.initBlock) > maxInitBlockLen {
		return nil, invalidParamsErrorf("function name and customizer exceed %d bytes once encoded", maxInitBlockLen)
	}
	c.Reset()
	return c, nil
}

// Reset clears the sponge and absorbs the function name and customization
// string block again.
func (c *cshakeState) Reset() {
	c.state.Reset()
	_, _ = c.state.Write(bytepad(c.initBlock, c.rate))
}

// ComputeHash calculates and returns the cSHAKE output of input byte array.
// It does not reset the state after the computation to allow further writing.
func (c *cshakeState) ComputeHash(data []byte) Hash {
	c.Reset()
	_, _ = c.Write(data)
	return c.Sum(nil)
}

// Clone returns a copy of the cSHAKE context in its current state.
func (c *cshakeState) Clone() ShakeHash {
	return c.cloneCShake()
}

func (c *cshakeState) cloneCShake() *cshakeState {
	block := make([]byte, len(c.initBlock))
	copy(block, c.initBlock)
	return &cshakeState{
		state:     c.state.clone(),
		initBlock: block,
	}
}

// bytepad prepends the encoding of w to input and pads the result
// with zeros to a multiple of w bytes.
func bytepad(input []byte, w int) []byte {
	buf := make([]byte, 0, 9+len(input)+w)
	buf = append(buf, leftEncode(uint64(w))...)
	buf = append(buf, input...)
	padlen := w - len(buf)%w
	return append(buf, make([]byte, padlen)...)
}

// encodeString encodes the bit length of s followed by s itself.
func encodeString(s []byte) []byte {
	out := make([]byte, 0, 9+len(s))
	out = append(out, leftEncode(uint64(len(s)*8))...)
	return append(out, s...)
}

// leftEncode encodes an integer in a variable-length encoding
// unambiguously parseable from the beginning of a string.
func leftEncode(value uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[1:], value)
	// Trim all but the last leading zero byte.
	i := byte(1)
	for i < 8 && b[i] == 0 {
		i++
	}
	// Prepend the number of encoded bytes.
	b[i-1] = 9 - i
	return b[i-1:]
}

// rightEncode encodes an integer in a variable-length encoding
// unambiguously parseable from the end of a string.
func rightEncode(value uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[:8], value)
	// Trim all but the last leading zero byte.
	i := byte(0)
	for i < 7 && b[i] == 0 {
		i++
	}
	// Append the number of encoded bytes.
	b[8] = 8 - i
	return b[i:]
}
