package entity

import (
	"fmt"
	"time"
)

type Channel struct {
	ID             int64     `json:"id"`
	SlackChannelID string    `json:"slack_channel_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HistoryFileName is the name of the channel's history file, locally and in the bucket.
func (c Channel) HistoryFileName() string {
	return fmt.Sprintf("%s_%s_history.csv", c.Name, c.SlackChannelID)
}
