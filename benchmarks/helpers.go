// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/comalice/staticvec"
	"github.com/comalice/staticvec/internal/scenario"
)

// Fill returns a vector holding 0..n-1, clamped to its capacity.
func Fill[S staticvec.Storage[int]](n int) staticvec.Vector[int, S] {
	var v staticvec.Vector[int, S]
	for i := 0; i < min(n, v.Cap()); i++ {
		_, _ = v.PushBack(i)
	}
	return v
}

// GenScenario creates a scenario of n random steps that never fails: every step stays within
// the capacity and the expected contents are tracked alongside.
func GenScenario(capacity, n int, seed uint64) *scenario.Scenario {
	if n < 1 {
		n = 1
	}
	rng := rand.New(rand.NewPCG(seed, uint64(capacity)))
	b := scenario.New(fmt.Sprintf("random_%d_%d", capacity, n), capacity)

	var model []int
	for i := 0; i < n; i++ {
		switch {
		case len(model) < capacity && rng.IntN(3) > 0:
			at, x := rng.IntN(len(model)+1), rng.IntN(1000)
			b.Insert(at, x)
			model = slices.Insert(model, at, x)
		case len(model) > 0:
			at := rng.IntN(len(model))
			b.Erase(at)
			model = slices.Delete(model, at, at+1)
		default:
			b.PopBack()
		}
		b.Expect(model...)
	}

	sc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sc
}

// GenScenarioYAML marshals GenScenario.
func GenScenarioYAML(capacity, n int) []byte {
	data, err := yaml.Marshal(GenScenario(capacity, n, 1))
	if err != nil {
		panic(err)
	}
	return data
}
