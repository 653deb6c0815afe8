package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (slack_channel_id, slack_channel_name)
		VALUES (?, ?)
	`

	result, err := r.db.Exec(query,
		channel.SlackChannelID,
		channel.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepo) GetBySlackID(slackChannelID string) (*entity.Channel, error) {
	channel := &entity.Channel{}
	query := `
		SELECT id, slack_channel_id, slack_channel_name, created_at, updated_at
		FROM channels
		WHERE slack_channel_id = ?
	`

	err := r.db.QueryRow(query, slackChannelID).Scan(
		&channel.ID,
		&channel.SlackChannelID,
		&channel.Name,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}
