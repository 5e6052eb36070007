package exam

import (
	"math/rand/v2"

	"github.com/tlevesque/amfprep/internal/bank"
)

// Sampler draws stratified working sets from the question bank.
// Each session gets fresh randomness; no seed is persisted.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler with its own random source.
func NewSampler() *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSamplerWithRand creates a sampler using the given source.
// Tests use this to make draws reproducible.
func NewSamplerWithRand(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Draw builds the working set for one session: for each quota category it
// picks exactly Required questions uniformly at random, without replacement,
// from the bank questions not in used. The per-category draws are then
// shuffled together so category order is not visible to the user.
//
// The draw is all-or-nothing: if any category cannot meet its quota the
// whole draw fails with an InsufficientSupplyError.
func (s *Sampler) Draw(b *bank.Bank, used map[string]bool, quotas QuotaSet) ([]bank.Question, error) {
	if err := quotas.Validate(); err != nil {
		return nil, err
	}

	working := make([]bank.Question, 0, quotas.TotalRequired())
	for _, cat := range quotas.Categories() {
		quota := quotas[cat]

		var available []bank.Question
		for _, q := range b.ByCategory(cat) {
			if !used[q.ID] {
				available = append(available, q)
			}
		}
		if len(available) < quota.Required {
			return nil, &InsufficientSupplyError{Category: cat, Have: len(available), Need: quota.Required}
		}

		for _, i := range s.rng.Perm(len(available))[:quota.Required] {
			working = append(working, available[i])
		}
	}

	s.rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})
	return working, nil
}
