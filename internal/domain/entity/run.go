package entity

import "time"

type RunMode string

const (
	RunModeIdle   RunMode = "idle"
	RunModeMatch  RunMode = "match"
	RunModePrompt RunMode = "prompt"
)

// DeliveryResult reports the outcome of notifying a single pairing.
type DeliveryResult struct {
	Pair PairKey
	Err  error
}

func (d DeliveryResult) Delivered() bool {
	return d.Err == nil
}

type RunReport struct {
	Channel          Channel
	Mode             RunMode
	RanOn            time.Time
	DaysSinceLastRun int
	Round            *MatchRound
	Prompted         []*PastPairing
	Deliveries       []DeliveryResult
	DryRun           bool
}

func (r *RunReport) FailedDeliveries() int {
	failed := 0
	for _, d := range r.Deliveries {
		if !d.Delivered() {
			failed++
		}
	}
	return failed
}

type ChannelStatus struct {
	Channel          Channel
	LastMatchedOn    time.Time
	DaysSinceLastRun int
	NextMode         RunMode
	TotalPairings    int
	AwaitingPrompt   int
}
