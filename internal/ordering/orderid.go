package ordering

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// a random fraction is expanded to this many base-36 digits and the id
	// is the tail after skipping the leading ones.
	fractionDigits = 11
	skipDigits     = fractionDigits - models.OrderIDLength
)

// IDGenerator produces short base-36 order ids. Ids are not unique: there is
// no collision check and nothing remembers issued ids.
type IDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewIDGenerator() *IDGenerator {
	return NewSeededIDGenerator(time.Now().UnixNano())
}

func NewSeededIDGenerator(seed int64) *IDGenerator {
	return &IDGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	f := g.rng.Float64()
	g.mu.Unlock()
	return encodeFraction(f, fractionDigits)[skipDigits:]
}

// encodeFraction writes the first n base-36 digits of f, which must be in
// [0,1).
func encodeFraction(f float64, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		f *= 36
		d := int(f)
		if d > 35 {
			d = 35
		}
		buf[i] = base36Alphabet[d]
		f -= float64(d)
	}
	return string(buf)
}
