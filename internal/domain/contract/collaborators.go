package contract

import (
	"context"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

//go:generate mockgen -source=collaborators.go -destination=../../../mocks/collaborators.go -package=mocks

// RosterProvider lists the channel members that can take part in a round.
// Deactivated, restricted and bot accounts are never returned.
type RosterProvider interface {
	ListEligibleParticipants(ctx context.Context, channelID string) ([]entity.Participant, error)
}

// HistoryStore persists the pairing history of a channel. Save rewrites the whole history.
type HistoryStore interface {
	Load(ctx context.Context, channel entity.Channel) (*entity.PairingHistory, error)
	Save(ctx context.Context, channel entity.Channel, history *entity.PairingHistory) error
}

// Notifier delivers doughnut messages. Failures are reported per pairing.
type Notifier interface {
	AnnounceRound(ctx context.Context, channelID string, round *entity.MatchRound) ([]entity.DeliveryResult, error)
	SendDirectPrompt(ctx context.Context, pairing *entity.PastPairing) error
	SendPrompts(ctx context.Context, pairings []*entity.PastPairing) []entity.DeliveryResult
}
