package crypt

import (
	"math/rand"

	"github.com/tutils/tkey/subkey"
)

var _ rand.Source = (*LCGSource)(nil)
var _ rand.Source64 = (*LCGSource)(nil)

// LCGSource is Knuth's MMIX linear congruential generator. A raw LCG step has
// short periods in its low bits, which would show up in the low keystream
// bytes, so every output word is assembled from the high halves of two steps.
type LCGSource uint64

const (
	lcgMul   = 6364136223846793005
	lcgInc   = 1442695040888963407
	highMask = 0xffffffff00000000
)

func NewLCGSource(seed int64) rand.Source {
	l := LCGSource(seed)
	return &l
}

func (l *LCGSource) Seed(seed int64) {
	*l = LCGSource(seed)
}

func (l *LCGSource) step() uint64 {
	*l = *l*lcgMul + lcgInc
	return uint64(*l)
}

func (l *LCGSource) Uint64() uint64 {
	low := l.step() >> 32
	return low | l.step()&highMask
}

func (l *LCGSource) Int63() int64 {
	return int64(l.Uint64() >> 1)
}

// NewSubkeySource keys a subkey schedule PRNG with seed taken as a uint64.
// Its keystream repeats every 16 words.
func NewSubkeySource(seed int64) rand.Source {
	return subkey.New(subkey.WithMasterKey(uint64(seed)))
}
