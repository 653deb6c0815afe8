package matching

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

// Engine computes pairing rounds. It is not safe for concurrent use because it
// owns its random source.
type Engine struct {
	weights Weights
	rng     *rand.Rand
	log     *logger.Logger
}

type Option func(*Engine)

func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		weights: WeightedStrategy,
		log:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// ComputeMatches pairs every participant of the roster exactly once, except for
// odd rosters where the leftover participant gets a second pairing with their
// best-scoring partner.
func (e *Engine) ComputeMatches(roster []entity.Participant, history *entity.PairingHistory, today time.Time) (*entity.MatchRound, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	prior, skipped := BuildPriorIndex(history)
	for _, p := range skipped {
		e.log.Warn("skipping malformed history entry",
			"error", domain.ErrMalformedHistoryEntry,
			"participant_a", p.ParticipantA,
			"participant_b", p.ParticipantB,
			"matched_on", domain.FormatDate(p.MatchedOn),
		)
	}

	candidates := e.scoreCandidates(roster, prior)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	round := &entity.MatchRound{MatchedOn: domain.DateOf(today)}
	matched := make(map[string]bool, len(roster))

	for _, c := range candidates {
		if matched[c.A.ID] || matched[c.B.ID] {
			continue
		}
		round.Pairs = append(round.Pairs, c)
		matched[c.A.ID] = true
		matched[c.B.ID] = true
	}

	for _, p := range roster {
		if matched[p.ID] {
			continue
		}
		second, ok := bestPartner(p, candidates)
		if !ok {
			return nil, fmt.Errorf("no partner available for %s: %w", p.ID, domain.ErrInsufficientParticipants)
		}
		e.log.Debug("participant left over, giving them a second match",
			"participant", p.ID,
			"partner", second.B.ID,
		)
		round.Pairs = append(round.Pairs, second)
		matched[p.ID] = true
	}

	return round, nil
}

func (e *Engine) scoreCandidates(roster []entity.Participant, prior PriorIndex) []entity.CandidatePair {
	candidates := make([]entity.CandidatePair, 0, len(roster)*(len(roster)-1)/2)
	span := e.weights.jitterSpan()

	for i := 0; i < len(roster); i++ {
		for j := i + 1; j < len(roster); j++ {
			a, b := roster[i], roster[j]
			c := entity.CandidatePair{
				A:                 a,
				B:                 b,
				PriorCount:        prior.Count(a.ID, b.ID),
				DifferentTimezone: !a.SameTimezone(b),
			}
			c.Score = e.weights.base(c.DifferentTimezone, c.PriorCount)
			if e.weights.Jitter {
				c.Score += e.rng.Float64() * span
			}
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// bestPartner walks candidates sorted by score and returns the first one that
// includes p, oriented so that p is A.
func bestPartner(p entity.Participant, sorted []entity.CandidatePair) (entity.CandidatePair, bool) {
	for _, c := range sorted {
		if !c.Includes(p.ID) {
			continue
		}
		if c.B.ID == p.ID {
			c.A, c.B = c.B, c.A
		}
		return c, true
	}
	return entity.CandidatePair{}, false
}

func validateRoster(roster []entity.Participant) error {
	seen := make(map[string]bool, len(roster))
	for _, p := range roster {
		if p.ID == "" {
			return fmt.Errorf("%w: %q", domain.ErrInvalidParticipant, p.DisplayName)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = true
	}
	if len(seen) < 2 {
		return domain.ErrInsufficientParticipants
	}
	return nil
}
