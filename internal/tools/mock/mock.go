// Package mock contains the tool handlers for restricted hosting
// environments where no model inference is available. Each handler fabricates
// plausible output with deterministic heuristics, template substitution or a
// randomized choice from a fixed candidate set, keeping the same output
// contracts as the inference-backed handlers.
package mock

import (
	"math/rand"
	"sync"

	"ai-tools-go/internal/tools"
)

// randSource guards a shared *rand.Rand, which is not safe for concurrent
// use by multiple request goroutines.
type randSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randSource) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *randSource) perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}

// NewToolSet returns the six mock tool handlers. The random source is
// injectable so tests can pass a fixed seed.
func NewToolSet(rng *rand.Rand) []tools.Tool {
	src := &randSource{rng: rng}
	return []tools.Tool{
		NewSemanticsAnalyzer(),
		NewImageClassifier(src),
		NewTextSummarizer(),
		NewJokeGenerator(src),
		NewHaikuWriter(src),
		NewQuestionAnswerer(src),
	}
}
