package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Floor generation never uses math/rand so that layouts are reproducible
// bit-for-bit across Go versions.
type RNG struct {
	state uint64
}

// Stream labels for deriving per-stage child generators. Each pipeline stage
// draws from its own stream so that skipping or reordering an unrelated stage
// never perturbs another stage's draws.
const (
	StreamGraph uint64 = iota + 1
	StreamTypes
	StreamTemplates
	StreamSpatial
	StreamHallways
)

// NewRNG creates a new generator with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// Child derives an independent generator for the given stream label.
// The derivation is a splitmix64 finalizer over seed and label, so child
// streams do not share state with the parent or with each other.
func (r *RNG) Child(label uint64) *RNG {
	z := r.state + label*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		z = 88172645463325252
	}
	return &RNG{state: z}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
