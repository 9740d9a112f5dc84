package keys

// legacyRand reproduces glibc's rand()/srand() (the TYPE_3 additive feedback generator).
// Each instance owns its state, unlike the process-wide C generator.
type legacyRand struct {
	state [legacyDegree]uint32
	front int
	rear  int
}

const (
	legacyDegree     = 31
	legacySeparation = 3
	legacyDiscard    = 10 * legacyDegree
)

// newLegacyRand returns a generator in the state srand(seed) leaves behind.
func newLegacyRand(seed uint32) *legacyRand {
	if seed == 0 {
		seed = 1
	}

	g := &legacyRand{}

	word := int32(seed) //nolint:gosec // reinterpretation matches the C int32_t state
	g.state[0] = uint32(word)

	for i := 1; i < legacyDegree; i++ {
		// Park-Miller step (16807 * word % 2147483647) without overflowing 31 bits.
		hi := int64(word) / 127773
		lo := int64(word) % 127773

		word = int32(16807*lo - 2836*hi) //nolint:gosec // fits by construction
		if word < 0 {
			word += 2147483647
		}

		g.state[i] = uint32(word)
	}

	g.front = legacySeparation
	g.rear = 0

	for range legacyDiscard {
		g.Int31()
	}

	return g
}

// Int31 returns the next value in [0, 2^31).
func (g *legacyRand) Int31() uint32 {
	g.state[g.front] += g.state[g.rear]
	val := g.state[g.front] >> 1

	g.front++
	if g.front >= legacyDegree {
		g.front = 0
		g.rear++
	} else {
		g.rear++
		if g.rear >= legacyDegree {
			g.rear = 0
		}
	}

	return val
}
