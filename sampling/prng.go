package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

type securePRNG struct {
}

// NewPRNG returns a PRNG reading from crypto/rand.
func NewPRNG() PRNG {
	return &securePRNG{}
}

func (prng *securePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into a byte stream with the blake2b XOF.
// Two KeyedPRNG built from the same key produce the same stream, which makes
// random curves reproducible.
// The stream is only deterministic if a single goroutine reads from it.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG. A nil key is treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}

	prng := &KeyedPRNG{
		key: make([]byte, len(key)),
		xof: xof,
	}

	copy(prng.key, key)

	return prng, nil
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)

	return
}

func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()

	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()

	prng.xof.Reset()
}
