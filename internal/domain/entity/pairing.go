package entity

import (
	"fmt"
	"time"
)

// PairKey identifies an unordered pair of participant ids.
type PairKey struct {
	Low  string
	High string
}

func NewPairKey(x, y string) PairKey {
	if x > y {
		x, y = y, x
	}
	return PairKey{Low: x, High: y}
}

func (k PairKey) String() string {
	return fmt.Sprintf("%s/%s", k.Low, k.High)
}

// PastPairing is one recorded doughnut. The order of A and B carries no meaning.
type PastPairing struct {
	ParticipantA string    `json:"participant_a"`
	NameA        string    `json:"name_a"`
	ParticipantB string    `json:"participant_b"`
	NameB        string    `json:"name_b"`
	MatchedOn    time.Time `json:"matched_on"`
	Prompted     bool      `json:"prompted"`
}

func (p *PastPairing) Key() PairKey {
	return NewPairKey(p.ParticipantA, p.ParticipantB)
}

// Legacy reports whether either side is still keyed by name, as in history
// files written before ids were stored.
func (p *PastPairing) Legacy() bool {
	return p.ParticipantA == p.NameA || p.ParticipantB == p.NameB
}

// PairingHistory is append-only and chronological, newest last.
type PairingHistory struct {
	Pairings []*PastPairing
}

func NewPairingHistory(pairings ...*PastPairing) *PairingHistory {
	return &PairingHistory{Pairings: pairings}
}

func (h *PairingHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Pairings)
}

func (h *PairingHistory) Append(pairings ...*PastPairing) {
	h.Pairings = append(h.Pairings, pairings...)
}

// LastMatchedOn returns the date of the newest pairing, or the zero time for an empty history.
func (h *PairingHistory) LastMatchedOn() time.Time {
	if h.Len() == 0 {
		return time.Time{}
	}
	return h.Pairings[len(h.Pairings)-1].MatchedOn
}

// Latest returns up to n of the newest pairings, newest first.
func (h *PairingHistory) Latest(n int) []*PastPairing {
	if n <= 0 || h.Len() == 0 {
		return nil
	}
	if n > len(h.Pairings) {
		n = len(h.Pairings)
	}

	latest := make([]*PastPairing, 0, n)
	for i := len(h.Pairings) - 1; i >= len(h.Pairings)-n; i-- {
		latest = append(latest, h.Pairings[i])
	}
	return latest
}

func (h *PairingHistory) AwaitingPrompt() int {
	if h == nil {
		return 0
	}
	count := 0
	for _, p := range h.Pairings {
		if !p.Prompted {
			count++
		}
	}
	return count
}
