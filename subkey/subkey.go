// Package subkey is a toy generator modelled on the DES key schedule.
//
// A 64-bit master key is split into two 32-bit halves which are rotated left
// once or twice per round. Each round's recombined value is xored with its own
// bit reversal and offset by the round number to give one of 16 subkeys.
// Output cycles through the subkeys, so the sequence repeats every 16 values.
//
// None of this is cryptographically secure.
package subkey

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tutils/tkey"
)

// DefaultAlphabet holds letters, digits and seven symbols (69 characters).
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&"

var _ rand.Source = (*PRNG)(nil)
var _ rand.Source64 = (*PRNG)(nil)

// PRNG is not safe for concurrent use; wrap it with tkey.NewSyncSource or
// keep one per goroutine.
type PRNG struct {
	masterKey uint64
	subkeys   Schedule
	cursor    int
}

// New create a new PRNG
func New(opts ...Option) *PRNG {
	opt := newOptions(opts...)
	key := opt.masterKey
	if !opt.hasMasterKey {
		key = uint64(opt.clock().UnixMilli())
	}
	return newPRNG(key)
}

func newPRNG(key uint64) *PRNG {
	return &PRNG{
		masterKey: key,
		subkeys:   Derive(key),
	}
}

// MasterKey returns the key the schedule was derived from
func (p *PRNG) MasterKey() uint64 {
	return p.masterKey
}

// Subkeys returns a copy of the schedule
func (p *PRNG) Subkeys() Schedule {
	return p.subkeys
}

// Cursor returns the index of the next subkey to be consumed
func (p *PRNG) Cursor() int {
	return p.cursor
}

// NextRaw permutes the subkey under the cursor, then advances the cursor.
func (p *PRNG) NextRaw() uint64 {
	k := p.subkeys[p.cursor]
	p.cursor = (p.cursor + 1) % Rounds
	return bitReverseXOR64(k)
}

// NextInRange returns a value in [min, max]. Spans wider than int64 wrap
// modulo 2^64.
func (p *PRNG) NextInRange(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("range [%d, %d]: %w", min, max, tkey.ErrInvalidArgument)
	}
	span := uint64(max) - uint64(min) + 1
	r := p.NextRaw()
	if span == 0 {
		return int64(uint64(min) + r), nil
	}
	return int64(uint64(min) + r%span), nil
}

// RollDie returns a six-sided die roll
func (p *PRNG) RollDie() int {
	n, _ := p.NextInRange(1, 6)
	return int(n)
}

// Password draws length characters from alphabet, one subkey per character.
func (p *PRNG) Password(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length %d: %w", length, tkey.ErrInvalidArgument)
	}
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return "", fmt.Errorf("empty alphabet: %w", tkey.ErrInvalidArgument)
	}
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := p.NextInRange(0, int64(len(chars)-1))
		if err != nil {
			return "", err
		}
		sb.WriteRune(chars[n])
	}
	return sb.String(), nil
}

// Uint64 implements rand.Source64
func (p *PRNG) Uint64() uint64 {
	return p.NextRaw()
}

// Int63 implements rand.Source
func (p *PRNG) Int63() int64 {
	return int64(p.NextRaw() >> 1)
}

// Seed re-keys the generator and rewinds the cursor
func (p *PRNG) Seed(seed int64) {
	*p = *newPRNG(uint64(seed))
}
