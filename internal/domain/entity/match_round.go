package entity

import "time"

// CandidatePair is a scored potential pairing computed for a single round.
type CandidatePair struct {
	A                 Participant
	B                 Participant
	PriorCount        int
	DifferentTimezone bool
	Score             float64
}

func (c CandidatePair) Includes(id string) bool {
	return c.A.ID == id || c.B.ID == id
}

func (c CandidatePair) Key() PairKey {
	return NewPairKey(c.A.ID, c.B.ID)
}

type MatchRound struct {
	Pairs     []CandidatePair
	MatchedOn time.Time
}

// Appearances counts how many pairs each participant id appears in.
func (r *MatchRound) Appearances() map[string]int {
	counts := make(map[string]int, len(r.Pairs)*2)
	for _, pair := range r.Pairs {
		counts[pair.A.ID]++
		counts[pair.B.ID]++
	}
	return counts
}

// ToPastPairings converts the round into the records appended to the channel history.
func (r *MatchRound) ToPastPairings() []*PastPairing {
	pairings := make([]*PastPairing, 0, len(r.Pairs))
	for _, pair := range r.Pairs {
		pairings = append(pairings, &PastPairing{
			ParticipantA: pair.A.ID,
			NameA:        pair.A.DisplayName,
			ParticipantB: pair.B.ID,
			NameB:        pair.B.DisplayName,
			MatchedOn:    r.MatchedOn,
			Prompted:     false,
		})
	}
	return pairings
}
