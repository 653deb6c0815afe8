package matching

import "github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"

// PriorIndex counts past pairings per unordered pair of participant ids.
type PriorIndex map[entity.PairKey]int

// BuildPriorIndex indexes history symmetrically. Entries without two distinct ids
// cannot be attributed to a pair and are returned separately.
func BuildPriorIndex(history *entity.PairingHistory) (PriorIndex, []*entity.PastPairing) {
	index := make(PriorIndex)
	if history == nil {
		return index, nil
	}

	var skipped []*entity.PastPairing
	for _, p := range history.Pairings {
		if p == nil {
			continue
		}
		if p.ParticipantA == "" || p.ParticipantB == "" || p.ParticipantA == p.ParticipantB {
			skipped = append(skipped, p)
			continue
		}
		index[p.Key()]++
	}
	return index, skipped
}

func (idx PriorIndex) Count(x, y string) int {
	return idx[entity.NewPairKey(x, y)]
}
