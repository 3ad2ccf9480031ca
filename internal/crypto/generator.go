package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"unicode/utf8"
)

const (
	DefaultLength = 24
	// MaxLength bounds requests arriving over HTTP. The CLI accepts any
	// positive length.
	MaxLength = 1024
)

var (
	ErrInvalidLength = errors.New("password length must be a positive integer")
	ErrLengthTooLong = fmt.Errorf("password length must be at most %d", MaxLength)
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one symbol")
	ErrEntropySource = errors.New("random source failed")
)

// Password is a generated secret kept as UTF-8 bytes so it can be wiped once
// it has been printed or handed to the clipboard.
type Password struct {
	buf []byte
}

// Bytes returns the UTF-8 encoding. The slice aliases the password storage.
func (p *Password) Bytes() []byte { return p.buf }

// String returns a copy of the password. Copies outlive Wipe.
func (p *Password) String() string { return string(p.buf) }

// Runes decodes the password into unicode scalar values.
func (p *Password) Runes() []rune { return []rune(string(p.buf)) }

// Wipe zeroes the password storage.
func (p *Password) Wipe() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	p.buf = p.buf[:0]
}

// Generate draws length symbols uniformly from alphabet using rnd, which
// must be a cryptographically secure source such as crypto/rand.Reader.
// A failing source aborts generation; there is no fallback.
func Generate(alphabet []rune, length int, rnd io.Reader) (*Password, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, 0, length*utf8.UTFMax)

	for i := 0; i < length; i++ {
		n, err := randIndex(rnd, limit)
		if err != nil {
			wipe(buf[:cap(buf)])
			return nil, err
		}
		buf = utf8.AppendRune(buf, alphabet[n])
	}

	return &Password{buf: buf}, nil
}

// randIndex picks a uniform index in [0, limit) from rnd.
func randIndex(rnd io.Reader, limit *big.Int) (int, error) {
	n, err := rand.Int(rnd, limit)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return int(n.Int64()), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
