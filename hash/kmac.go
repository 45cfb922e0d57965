package hash

// kmac implements KMAC128, the keyed MAC mode of cSHAKE128 defined in
// NIST SP 800-185. The output length takes part in the MAC computation,
// it is fixed at construction.
type kmac struct {
	*cshakeState

	// keyBlock holds the encoding of the key. It is absorbed again,
	// padded to a full sponge block, after each Reset.
	keyBlock []byte
}

// kmacFunctionName is the cSHAKE function name reserved by NIST for KMAC.
var kmacFunctionName = []byte("KMAC")

// NewKMAC_128 returns a new KMAC128 instance.
//   - key is the MAC key, its length must be at least KmacMinKeyLen.
//   - customizer is an optional domain separator, it can be empty.
//   - outputSize is the MAC output size in bytes, it must be between 1 and 65536.
func NewKMAC_128(key []byte, customizer []byte, outputSize int) (Hasher, error) {
	if len(key) < KmacMinKeyLen {
		return nil, invalidParamsErrorf("the key length must be larger or equal to %d bytes, got %d", KmacMinKeyLen, len(key))
	}
	// the function name "KMAC" is never empty so newCShake cannot take
	// the plain SHAKE path.
	c, err := newCShake(kmacFunctionName, customizer, 168, outputSize, KMAC128)
	if err != nil {
		return nil, err
	}
	k := &kmac{
		cshakeState: c.(*cshakeState),
		keyBlock:    encodeString(key),
	}
	if len(k.keyBlock) > maxInitBlockLen {
		return nil, invalidParamsErrorf("the key exceeds %d bytes once encoded", maxInitBlockLen)
	}
	_, _ = k.state.Write(bytepad(k.keyBlock, k.rate))
	return k, nil
}

// Reset clears the sponge and absorbs the cSHAKE prefix and the key
// block again.
func (k *kmac) Reset() {
	k.cshakeState.Reset()
	_, _ = k.state.Write(bytepad(k.keyBlock, k.rate))
}

// Clone returns a copy of the KMAC context in its current state.
func (k *kmac) Clone() ShakeHash {
	block := make([]byte, len(k.keyBlock))
	copy(block, k.keyBlock)
	return &kmac{
		cshakeState: k.cshakeState.cloneCShake(),
		keyBlock:    block,
	}
}

// Sum appends the current KMAC output to in. The output length encoding is
// absorbed into a copy of the state, the underlying state is left untouched
// so that more data can still be written.
func (k *kmac) Sum(in []byte) []byte {
	dup := k.state.clone()
	_, _ = dup.Write(rightEncode(uint64(k.outputLen) * 8))
	hash := make([]byte, k.outputLen)
	_, _ = dup.Read(hash)
	return append(in, hash...)
}

// SumHash returns the KMAC output.
// It does not reset the state to allow further writing.
func (k *kmac) SumHash() Hash {
	return k.Sum(nil)
}

// ComputeHash calculates and returns the KMAC output of input byte array.
// It does not reset the state after the computation to allow further writing.
func (k *kmac) ComputeHash(data []byte) Hash {
	k.Reset()
	_, _ = k.Write(data)
	return k.Sum(nil)
}
