package contract

import (
	"context"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Pairing() PairingRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
}

// PairingRepo defines the contract for pairing history repository
type PairingRepo interface {
	Create(channelID int64, record entity.HistoryRecord) error
	GetByChannel(channelID int64) ([]entity.HistoryRecord, error)
	DeleteByChannel(channelID int64) error
}
