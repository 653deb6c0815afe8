package history

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

// SQLStore keeps histories in the pairings table.
type SQLStore struct {
	dm  contract.DataManager
	log *logger.Logger
}

func NewSQLStore(dm contract.DataManager, log *logger.Logger) *SQLStore {
	return &SQLStore{dm: dm, log: log}
}

func (s *SQLStore) Load(ctx context.Context, channel entity.Channel) (*entity.PairingHistory, error) {
	stored, err := s.dm.Channel().GetBySlackID(channel.SlackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	if stored == nil {
		return entity.NewPairingHistory(), nil
	}

	records, err := s.dm.Pairing().GetByChannel(stored.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pairings: %w", err)
	}

	return decode(records, s.log.With("channel_id", channel.SlackChannelID)), nil
}

// Save replaces the stored history in a single transaction.
func (s *SQLStore) Save(ctx context.Context, channel entity.Channel, history *entity.PairingHistory) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		stored, err := tx.Channel().GetBySlackID(channel.SlackChannelID)
		if err != nil {
			return fmt.Errorf("failed to get channel: %w", err)
		}
		if stored == nil {
			stored = &entity.Channel{SlackChannelID: channel.SlackChannelID, Name: channel.Name}
			if err := tx.Channel().Create(stored); err != nil {
				return fmt.Errorf("failed to create channel: %w", err)
			}
		}

		if err := tx.Pairing().DeleteByChannel(stored.ID); err != nil {
			return fmt.Errorf("failed to clear pairings: %w", err)
		}
		for _, record := range encode(history) {
			if err := tx.Pairing().Create(stored.ID, record); err != nil {
				return fmt.Errorf("failed to store pairing: %w", err)
			}
		}
		return nil
	})
}
