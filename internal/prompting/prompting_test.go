package prompting

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func matchedDaysAgo(a, b string, days int, prompted bool) *entity.PastPairing {
	return &entity.PastPairing{
		ParticipantA: a,
		ParticipantB: b,
		MatchedOn:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days),
		Prompted:     prompted,
	}
}

func TestSelectForPrompt(t *testing.T) {
	tests := []struct {
		name      string
		history   *entity.PairingHistory
		threshold int
		wantKeys  []entity.PairKey
	}{
		{
			name:      "Should return nothing for empty history",
			history:   entity.NewPairingHistory(),
			threshold: 7,
		},
		{
			name:      "Should return nothing for nil history",
			history:   nil,
			threshold: 7,
		},
		{
			name:      "Should select pairing past the threshold",
			history:   entity.NewPairingHistory(matchedDaysAgo("A", "B", 20, false)),
			threshold: 7,
			wantKeys:  []entity.PairKey{entity.NewPairKey("A", "B")},
		},
		{
			name:      "Should select pairing exactly at the threshold",
			history:   entity.NewPairingHistory(matchedDaysAgo("A", "B", 7, false)),
			threshold: 7,
			wantKeys:  []entity.PairKey{entity.NewPairKey("A", "B")},
		},
		{
			name:      "Should not select pairing before the threshold",
			history:   entity.NewPairingHistory(matchedDaysAgo("A", "B", 6, false)),
			threshold: 7,
		},
		{
			name:      "Should not select already prompted pairing",
			history:   entity.NewPairingHistory(matchedDaysAgo("A", "B", 20, true)),
			threshold: 7,
		},
		{
			name:      "Should tolerate match dates in the future",
			history:   entity.NewPairingHistory(matchedDaysAgo("A", "B", -8, false)),
			threshold: 7,
			wantKeys:  []entity.PairKey{entity.NewPairKey("A", "B")},
		},
		{
			name: "Should keep history order",
			history: entity.NewPairingHistory(
				matchedDaysAgo("A", "B", 28, false),
				matchedDaysAgo("C", "D", 28, true),
				matchedDaysAgo("E", "F", 14, false),
				matchedDaysAgo("G", "H", 3, false),
				matchedDaysAgo("B", "C", 8, false),
			),
			threshold: 7,
			wantKeys: []entity.PairKey{
				entity.NewPairKey("A", "B"),
				entity.NewPairKey("E", "F"),
				entity.NewPairKey("B", "C"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectForPrompt(tt.history, today, tt.threshold)

			require.Len(t, got, len(tt.wantKeys))
			for i, p := range got {
				assert.Equal(t, tt.wantKeys[i], p.Key())
				assert.True(t, p.Prompted)
			}
		})
	}
}

func TestSelectForPrompt_Idempotent(t *testing.T) {
	history := entity.NewPairingHistory(matchedDaysAgo("A", "B", 20, false))

	first := SelectForPrompt(history, today, 7)
	require.Len(t, first, 1)
	assert.Same(t, history.Pairings[0], first[0])
	assert.True(t, history.Pairings[0].Prompted)

	second := SelectForPrompt(history, today, 7)
	assert.Empty(t, second)
}
