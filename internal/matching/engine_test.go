package matching

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func participant(id, tz string) entity.Participant {
	return entity.Participant{ID: id, DisplayName: "name-" + id, Timezone: tz}
}

func pairing(a, b string, daysAgo int) *entity.PastPairing {
	return &entity.PastPairing{
		ParticipantA: a,
		ParticipantB: b,
		MatchedOn:    domain.DateOf(today).AddDate(0, 0, -daysAgo),
	}
}

func pairKeys(round *entity.MatchRound) map[entity.PairKey]bool {
	keys := make(map[entity.PairKey]bool, len(round.Pairs))
	for _, p := range round.Pairs {
		keys[p.Key()] = true
	}
	return keys
}

func assertValidRound(t *testing.T, roster []entity.Participant, round *entity.MatchRound) {
	t.Helper()

	appearances := round.Appearances()
	twice := 0
	for _, p := range roster {
		count := appearances[p.ID]
		require.GreaterOrEqual(t, count, 1, "participant %s was not matched", p.ID)
		require.LessOrEqual(t, count, 2, "participant %s matched %d times", p.ID, count)
		if count == 2 {
			twice++
		}
	}
	assert.Len(t, appearances, len(roster))

	if len(roster)%2 == 0 {
		assert.Zero(t, twice)
		assert.Len(t, round.Pairs, len(roster)/2)
	} else {
		assert.Equal(t, 1, twice)
		assert.Len(t, round.Pairs, len(roster)/2+1)
	}

	for _, pair := range round.Pairs {
		assert.NotEqual(t, pair.A.ID, pair.B.ID, "self pairing")
	}
}

func TestEngine_ComputeMatches_Errors(t *testing.T) {
	tests := []struct {
		name    string
		roster  []entity.Participant
		wantErr error
	}{
		{
			name:    "Should fail on empty roster",
			roster:  nil,
			wantErr: domain.ErrInsufficientParticipants,
		},
		{
			name:    "Should fail on single participant",
			roster:  []entity.Participant{participant("A", "UTC")},
			wantErr: domain.ErrInsufficientParticipants,
		},
		{
			name:    "Should fail on duplicate participant",
			roster:  []entity.Participant{participant("A", "UTC"), participant("A", "UTC")},
			wantErr: domain.ErrDuplicateParticipant,
		},
		{
			name:    "Should fail on participant without id",
			roster:  []entity.Participant{participant("A", "UTC"), {DisplayName: "ghost"}},
			wantErr: domain.ErrInvalidParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithSeed(1))

			round, err := e.ComputeMatches(tt.roster, entity.NewPairingHistory(), today)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, round)
		})
	}
}

func TestEngine_ComputeMatches_TimezoneScenario(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "UTC"),
		participant("C", "EST"),
		participant("D", "EST"),
	}

	for seed := int64(0); seed < 50; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			round, err := New(WithSeed(seed)).ComputeMatches(roster, entity.NewPairingHistory(), today)
			require.NoError(t, err)

			assertValidRound(t, roster, round)
			keys := pairKeys(round)
			assert.False(t, keys[entity.NewPairKey("A", "B")])
			assert.False(t, keys[entity.NewPairKey("C", "D")])
			for _, pair := range round.Pairs {
				assert.True(t, pair.DifferentTimezone)
				assert.Zero(t, pair.PriorCount)
			}
		})
	}
}

func TestEngine_ComputeMatches_OddRoster(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "UTC"),
		participant("C", "UTC"),
	}

	for seed := int64(0); seed < 20; seed++ {
		round, err := New(WithSeed(seed)).ComputeMatches(roster, entity.NewPairingHistory(), today)
		require.NoError(t, err)

		require.Len(t, round.Pairs, 2)
		assertValidRound(t, roster, round)
	}
}

func TestEngine_ComputeMatches_LeftoverGetsBestPartner(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "UTC"),
		participant("C", "EST"),
	}
	// A and C have met twice, B and C once: A-B is the first pair, C is left over
	// and must get B as their second partner.
	history := entity.NewPairingHistory(
		pairing("A", "C", 40),
		pairing("C", "A", 28),
		pairing("B", "C", 14),
	)

	round, err := New(WithSeed(7)).ComputeMatches(roster, history, today)
	require.NoError(t, err)

	require.Len(t, round.Pairs, 2)
	assert.Equal(t, entity.NewPairKey("A", "B"), round.Pairs[0].Key())
	assert.Equal(t, "C", round.Pairs[1].A.ID)
	assert.Equal(t, "B", round.Pairs[1].B.ID)
	assert.Equal(t, 1, round.Pairs[1].PriorCount)
}

func TestEngine_ComputeMatches_RepeatSuppression(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "UTC"),
		participant("C", "UTC"),
		participant("D", "UTC"),
	}
	history := entity.NewPairingHistory(
		pairing("A", "B", 14),
		pairing("D", "C", 14),
	)

	for seed := int64(0); seed < 50; seed++ {
		round, err := New(WithSeed(seed)).ComputeMatches(roster, history, today)
		require.NoError(t, err)

		keys := pairKeys(round)
		assert.False(t, keys[entity.NewPairKey("A", "B")], "seed %d repeated A-B", seed)
		assert.False(t, keys[entity.NewPairKey("C", "D")], "seed %d repeated C-D", seed)
	}
}

func TestEngine_ComputeMatches_RepeatOutweighsTimezone(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "EST"),
		participant("C", "UTC"),
		participant("D", "EST"),
	}
	// Both cross-timezone options for A have been used; a same-timezone pairing wins.
	history := entity.NewPairingHistory(
		pairing("A", "B", 42),
		pairing("C", "D", 42),
		pairing("A", "D", 28),
		pairing("B", "C", 28),
	)

	round, err := New(WithSeed(3)).ComputeMatches(roster, history, today)
	require.NoError(t, err)

	keys := pairKeys(round)
	assert.True(t, keys[entity.NewPairKey("A", "C")])
	assert.True(t, keys[entity.NewPairKey("B", "D")])
}

func TestEngine_ComputeMatches_SkipsMalformedHistory(t *testing.T) {
	roster := []entity.Participant{participant("A", "UTC"), participant("B", "UTC")}
	history := entity.NewPairingHistory(
		pairing("A", "A", 14),
		pairing("", "B", 14),
	)

	round, err := New(WithSeed(1)).ComputeMatches(roster, history, today)
	require.NoError(t, err)

	require.Len(t, round.Pairs, 1)
	assert.Zero(t, round.Pairs[0].PriorCount)
}

func TestEngine_ComputeMatches_Deterministic(t *testing.T) {
	roster := make([]entity.Participant, 0, 9)
	for i := 0; i < 9; i++ {
		roster = append(roster, participant(fmt.Sprintf("U%02d", i), "UTC"))
	}

	first, err := New(WithSeed(42)).ComputeMatches(roster, nil, today)
	require.NoError(t, err)
	second, err := New(WithSeed(42)).ComputeMatches(roster, nil, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), first.MatchedOn)
}

func TestEngine_ComputeMatches_SimpleStrategyKeepsRosterOrder(t *testing.T) {
	roster := []entity.Participant{
		participant("A", "UTC"),
		participant("B", "UTC"),
		participant("C", "UTC"),
		participant("D", "UTC"),
	}

	round, err := New(WithWeights(SimpleStrategy)).ComputeMatches(roster, nil, today)
	require.NoError(t, err)

	require.Len(t, round.Pairs, 2)
	assert.Equal(t, entity.NewPairKey("A", "B"), round.Pairs[0].Key())
	assert.Equal(t, entity.NewPairKey("C", "D"), round.Pairs[1].Key())
	assert.Equal(t, float64(0), round.Pairs[0].Score)
}

func TestEngine_ComputeMatches_Coverage(t *testing.T) {
	zones := []string{"UTC", "EST", "PST", "CET"}
	rng := rand.New(rand.NewSource(99))

	for size := 2; size <= 17; size++ {
		t.Run(fmt.Sprintf("%d participants", size), func(t *testing.T) {
			roster := make([]entity.Participant, 0, size)
			for i := 0; i < size; i++ {
				roster = append(roster, participant(fmt.Sprintf("U%02d", i), zones[rng.Intn(len(zones))]))
			}

			history := entity.NewPairingHistory()
			for i := 0; i < size*2; i++ {
				a, b := roster[rng.Intn(size)].ID, roster[rng.Intn(size)].ID
				if a != b {
					history.Append(pairing(a, b, 14*(i+1)))
				}
			}

			round, err := New(WithSeed(int64(size))).ComputeMatches(roster, history, today)
			require.NoError(t, err)

			assertValidRound(t, roster, round)
		})
	}
}

func TestEngine_ComputeMatches_DoesNotMutateInputs(t *testing.T) {
	roster := []entity.Participant{participant("A", "UTC"), participant("B", "EST"), participant("C", "UTC")}
	original := append([]entity.Participant(nil), roster...)
	history := entity.NewPairingHistory(pairing("A", "B", 14))

	_, err := New(WithSeed(5)).ComputeMatches(roster, history, today)
	require.NoError(t, err)

	assert.Equal(t, original, roster)
	assert.Len(t, history.Pairings, 1)
	assert.False(t, history.Pairings[0].Prompted)
}

func TestMatchRound_ToPastPairings(t *testing.T) {
	round, err := New(WithSeed(1)).ComputeMatches(
		[]entity.Participant{participant("A", "UTC"), participant("B", "EST")}, nil, today)
	require.NoError(t, err)

	pairings := round.ToPastPairings()

	require.Len(t, pairings, 1)
	assert.Equal(t, entity.NewPairKey("A", "B"), pairings[0].Key())
	assert.Equal(t, domain.DateOf(today), pairings[0].MatchedOn)
	assert.False(t, pairings[0].Prompted)
	assert.ElementsMatch(t, []string{"name-A", "name-B"}, []string{pairings[0].NameA, pairings[0].NameB})
}
