package weights

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Weight range used by the hotel lab: closed-open [MinWeight, MaxWeight).
// Values ≤ 0 mean "no edge" to the graph builders.
const (
	MinWeight = -20
	MaxWeight = 41
)

// Pair is an ordered (From, To) pair of room numbers.
type Pair struct {
	From int
	To   int
}

// String renders the pair as "from-to".
func (p Pair) String() string { return fmt.Sprintf("%d-%d", p.From, p.To) }

// Source produces a weight for an ordered pair. Implementations need not be
// deterministic; Cache takes care of memoization.
type Source interface {
	Weight(p Pair) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(p Pair) int

// Weight calls f(p).
func (f SourceFunc) Weight(p Pair) int { return f(p) }

// UniformSource draws integers uniformly from [min, max).
// It owns its *rand.Rand and guards it, so one instance may be shared.
type UniformSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	min int
	max int
}

// NewUniformSource returns a UniformSource over [MinWeight, MaxWeight).
// seed==0 seeds from the wall clock; any other seed is used verbatim and
// makes the sequence reproducible.
func NewUniformSource(seed int64) *UniformSource {
	return NewRangeSource(MinWeight, MaxWeight, seed)
}

// NewRangeSource returns a UniformSource over [min, max).
// Panics if max <= min.
func NewRangeSource(min, max int, seed int64) *UniformSource {
	if max <= min {
		panic(fmt.Sprintf("weights: NewRangeSource requires min < max, got min=%d, max=%d", min, max))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &UniformSource{
		rng: rand.New(rand.NewSource(seed)),
		min: min,
		max: max,
	}
}

// Weight returns min + Intn(max-min). The pair is ignored.
func (s *UniformSource) Weight(_ Pair) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.min + s.rng.Intn(s.max-s.min)
}

// Fixed returns Weights[p] when present and Fallback otherwise.
// A zero Fallback suppresses every pair not listed.
type Fixed struct {
	Weights  map[Pair]int
	Fallback int
}

// Weight looks p up in the table.
func (f Fixed) Weight(p Pair) int {
	if w, ok := f.Weights[p]; ok {
		return w
	}
	return f.Fallback
}

// Constant returns a Source yielding w for every pair.
func Constant(w int) Source {
	return SourceFunc(func(Pair) int { return w })
}
