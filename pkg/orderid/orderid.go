package orderid

import (
	"math/rand"
	"strconv"
	"time"
)

// maxAttempts bounds the collision retry loop. Collisions need the same
// second and the same 3-char suffix, so in practice the first attempt wins.
const maxAttempts = 5

// ExistsFunc reports whether an id is already present in the ledger.
type ExistsFunc func(id string) bool

// Generator produces order identifiers of the form YYYYMMDD-SSSSS-rrr:
// a date prefix, the last five digits of the epoch second, and a short
// random base-36 suffix. Uniqueness is probabilistic; New verifies each
// candidate against the ledger and retries a bounded number of times.
type Generator struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewGenerator creates a generator seeded from the current time.
func NewGenerator() *Generator {
	return &Generator{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorAt creates a generator with an injected clock, for tests.
func NewGeneratorAt(now func() time.Time, seed int64) *Generator {
	return &Generator{
		now:  now,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// New returns a fresh order id. exists may be nil, in which case the first
// candidate is returned unchecked. After maxAttempts colliding candidates
// the last one is returned anyway rather than blocking the sale.
func (g *Generator) New(exists ExistsFunc) string {
	var id string
	for i := 0; i < maxAttempts; i++ {
		id = g.candidate()
		if exists == nil || !exists(id) {
			return id
		}
	}
	return id
}

func (g *Generator) candidate() string {
	t := g.now()
	epoch := strconv.FormatInt(t.Unix(), 10)
	if len(epoch) > 5 {
		epoch = epoch[len(epoch)-5:]
	}
	return DatePrefix(t) + "-" + epoch + "-" + g.suffix(3)
}

func (g *Generator) suffix(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// DatePrefix formats a time as YYYYMMDD in local time, shared with the
// export filename.
func DatePrefix(t time.Time) string {
	return t.Format("20060102")
}
