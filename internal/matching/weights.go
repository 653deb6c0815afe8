package matching

import (
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
)

// Weights controls how candidate pairs are scored:
//
//	score = Timezone*[tz(a) != tz(b)] - Repeat*priorCount + jitter
//
// Jitter, when enabled, is uniform in [0, gcd(Timezone, Repeat)/2) and therefore
// only reorders candidates whose weighted scores are equal.
type Weights struct {
	Timezone int
	Repeat   int
	Jitter   bool
}

var (
	// WeightedStrategy rewards timezone diversity but punishes a repeat twice as hard.
	WeightedStrategy = Weights{Timezone: 100, Repeat: 200, Jitter: true}

	// SimpleStrategy is deterministic: ties keep roster order.
	SimpleStrategy = Weights{Timezone: 2, Repeat: 1, Jitter: false}
)

func StrategyWeights(name string) (Weights, error) {
	switch name {
	case domain.StrategyWeighted, "":
		return WeightedStrategy, nil
	case domain.StrategySimple:
		return SimpleStrategy, nil
	default:
		return Weights{}, fmt.Errorf("unknown match strategy %q", name)
	}
}

func (w Weights) base(differentTimezone bool, priorCount int) float64 {
	score := -w.Repeat * priorCount
	if differentTimezone {
		score += w.Timezone
	}
	return float64(score)
}

// jitterSpan is half the smallest non-zero gap two base scores can have.
func (w Weights) jitterSpan() float64 {
	g := gcd(abs(w.Timezone), abs(w.Repeat))
	if g == 0 {
		return 0.5
	}
	return float64(g) / 2
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
