// Package generator picks target words.
package generator

import (
	"math/rand"
	"time"
)

// Generator picks words at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects one word uniformly. Draws are independent, so repeats are allowed.
func (g *Generator) Pick(words []string) string {
	return words[g.rnd.Intn(len(words))]
}

// PickWeighted selects one word with a bias toward words containing weak characters.
func (g *Generator) PickWeighted(words []string, weakSet map[rune]struct{}, factor float64) string {
	if len(weakSet) == 0 || factor <= 0 {
		return g.Pick(words)
	}
	weights := make([]float64, len(words))
	total := 0.0
	for i, word := range words {
		weakCount := 0
		for _, r := range word {
			if _, ok := weakSet[r]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*factor
		weights[i] = w
		total += w
	}

	r := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return words[i]
		}
	}
	return words[len(words)-1]
}

// WeightedPicker adapts a Generator to bias every pick toward a weak set.
type WeightedPicker struct {
	Gen     *Generator
	WeakSet map[rune]struct{}
	Factor  float64
}

// Pick implements game.Picker.
func (p *WeightedPicker) Pick(words []string) string {
	return p.Gen.PickWeighted(words, p.WeakSet, p.Factor)
}
