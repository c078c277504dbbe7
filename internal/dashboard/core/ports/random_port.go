package ports

// RandomPort is the single injection point for nondeterminism in the
// dashboard generators. Implementations must be safe for concurrent use.
type RandomPort interface {
	// IntBetween returns a random integer in [min, max], both bounds
	// inclusive. min must not exceed max.
	IntBetween(min, max int) int
	// Float64 returns a uniform random float in [0, 1).
	Float64() float64
}
