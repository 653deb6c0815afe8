// Package roster reads the members of a Slack channel that can be paired.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

const (
	membersPageSize    = 200
	defaultLookupLimit = 8
)

type SlackRoster struct {
	client      contract.SlackClient
	lookupLimit int
	log         *logger.Logger
}

func NewSlackRoster(client contract.SlackClient, lookupLimit int, log *logger.Logger) *SlackRoster {
	if lookupLimit <= 0 {
		lookupLimit = defaultLookupLimit
	}
	return &SlackRoster{client: client, lookupLimit: lookupLimit, log: log}
}

// ListEligibleParticipants returns the eligible members in the order Slack lists them.
func (r *SlackRoster) ListEligibleParticipants(ctx context.Context, channelID string) ([]entity.Participant, error) {
	memberIDs, err := r.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	users, err := r.lookup(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	participants := make([]entity.Participant, 0, len(users))
	for _, user := range users {
		if !eligible(user) {
			r.log.Debug("skipping member", "channel_id", channelID, "user_id", user.ID)
			continue
		}
		participants = append(participants, toParticipant(user))
	}

	r.log.Info("roster loaded", "channel_id", channelID, "members", len(memberIDs), "eligible", len(participants))
	return participants, nil
}

func (r *SlackRoster) members(ctx context.Context, channelID string) ([]string, error) {
	var (
		ids    []string
		cursor string
	)
	for {
		page, next, err := r.client.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
			ChannelID: channelID,
			Cursor:    cursor,
			Limit:     membersPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list members of %s: %w", channelID, err)
		}
		ids = append(ids, page...)

		if next == "" {
			return ids, nil
		}
		cursor = next
	}
}

// lookup fetches users.info for every id concurrently, keeping the input order.
func (r *SlackRoster) lookup(ctx context.Context, ids []string) ([]*slack.User, error) {
	users := make([]*slack.User, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.lookupLimit)
	for i, id := range ids {
		g.Go(func() error {
			user, err := r.client.GetUserInfoContext(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to get user info for %s: %w", id, err)
			}
			users[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return users, nil
}

func eligible(user *slack.User) bool {
	if user == nil || user.ID == "" {
		return false
	}
	if user.Deleted || user.IsRestricted || user.IsUltraRestricted || user.IsBot {
		return false
	}

	name := strings.ToLower(user.Name)
	for _, marker := range domain.BotNameMarkers {
		if strings.Contains(name, marker) {
			return false
		}
	}
	return true
}

func toParticipant(user *slack.User) entity.Participant {
	displayName := user.RealName
	if displayName == "" {
		displayName = user.Profile.RealName
	}
	if displayName == "" {
		displayName = user.Profile.DisplayName
	}
	if displayName == "" {
		displayName = user.Name
	}

	return entity.Participant{
		ID:          user.ID,
		Username:    user.Name,
		DisplayName: displayName,
		Timezone:    user.TZ,
	}
}
