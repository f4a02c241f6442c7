// Package keygen produces hexadecimal keys by hashing a seed and call counter,
// mixing the digest with xor-shifts and folding in wall-clock time.
//
// The output is not suitable for cryptographic use.
package keygen

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/tutils/tkey"
)

// DefaultKeyLength is the key length used by the command line tool
const DefaultKeyLength = 16

const counterStride = 1000003

// Generator is not safe for concurrent use; every call advances the counter.
type Generator struct {
	seed  int64
	calls uint64
	clock func() time.Time
}

// New create a new Generator
func New(opts ...Option) *Generator {
	opt := newOptions(opts...)
	g := &Generator{
		seed:  opt.seed,
		clock: opt.clock,
	}
	if !opt.hasSeed {
		g.seed = opt.clock().UnixMicro()
	}
	return g
}

// Seed returns the seed the generator was built with
func (g *Generator) Seed() int64 {
	return g.seed
}

// Calls returns how many keys have been generated
func (g *Generator) Calls() uint64 {
	return g.calls
}

// GenerateKey returns length uppercase hex digits. Digests shorter than length
// are repeated end to end.
func (g *Generator) GenerateKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("key length %d: %w", length, tkey.ErrInvalidArgument)
	}

	start := g.start()
	mixed := avalanche(hashDecimal(start))
	combined := mixed.Xor(mixed, big.NewInt(g.clock().UnixMicro()))
	hexKey := strings.ToUpper(hashDecimal(combined).Text(16))

	if len(hexKey) < length {
		hexKey = strings.Repeat(hexKey, length/len(hexKey)+1)
	}
	g.calls++
	return hexKey[:length], nil
}

// start is seed XOR (calls * 1000003), both taken as unbounded integers.
func (g *Generator) start() *big.Int {
	offset := new(big.Int).SetUint64(g.calls)
	offset.Mul(offset, big.NewInt(counterStride))
	return offset.Xor(offset, big.NewInt(g.seed))
}

// hashDecimal reads the SHA-256 digest of v's decimal text as a base-16 integer.
func hashDecimal(v *big.Int) *big.Int {
	sum := sha256.Sum256([]byte(v.String()))
	return new(big.Int).SetBytes(sum[:])
}

// avalanche applies v^=v>>13, v^=v<<7, v^=v>>17 without truncation; the
// result may grow past 256 bits.
func avalanche(v *big.Int) *big.Int {
	a := new(big.Int).Rsh(v, 13)
	a.Xor(a, v)
	b := new(big.Int).Lsh(a, 7)
	b.Xor(b, a)
	c := new(big.Int).Rsh(b, 17)
	return c.Xor(c, b)
}
