package xor

import (
	"encoding/binary"
	"io"
	"math/rand"

	"github.com/tutils/tkey/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed int64
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		key: newKeystream(opt.sourceNewer(c.seed)),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		key: newKeystream(opt.sourceNewer(c.seed)),
	}
}

// NewCrypt create a new Crypt
func NewCrypt(seed int64) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
	}
}

// keystream expands 64-bit source words into bytes, little endian. Sources
// without Uint64 contribute 63 bits per word.
type keystream struct {
	src  rand.Source
	word [8]byte
	off  int
}

func newKeystream(src rand.Source) *keystream {
	return &keystream{src: src, off: 8}
}

func (k *keystream) next() uint64 {
	if s64, ok := k.src.(rand.Source64); ok {
		return s64.Uint64()
	}
	return uint64(k.src.Int63())
}

func (k *keystream) xor(dst, src []byte) {
	for i, b := range src {
		if k.off == 8 {
			binary.LittleEndian.PutUint64(k.word[:], k.next())
			k.off = 0
		}
		dst[i] = b ^ k.word[k.off]
		k.off++
	}
}

type xorEncoder struct {
	w   io.Writer
	key *keystream
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	e.key.xor(e.buf, p)
	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	key *keystream
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	d.key.xor(p[:n], p[:n])
	return n, err
}
