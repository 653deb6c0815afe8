package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/diegoclair/slack-doughnut-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func user(id, name, tz string) *slack.User {
	return &slack.User{ID: id, Name: name, RealName: name + " real", TZ: tz}
}

func TestSlackRoster_ListEligibleParticipants(t *testing.T) {
	type args struct {
		channelID string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(client *mocks.MockSlackClient)
		want      []entity.Participant
		wantErr   bool
	}{
		{
			name: "Should follow pagination and keep member order",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					GetUsersInConversationContext(gomock.Any(), &slack.GetUsersInConversationParameters{ChannelID: "C1", Limit: 200}).
					Return([]string{"U1", "U2"}, "next", nil)
				client.EXPECT().
					GetUsersInConversationContext(gomock.Any(), &slack.GetUsersInConversationParameters{ChannelID: "C1", Cursor: "next", Limit: 200}).
					Return([]string{"U3"}, "", nil)

				client.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(user("U1", "alice", "Europe/London"), nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U2").Return(user("U2", "bob", "America/New_York"), nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U3").Return(user("U3", "charlie", "Europe/London"), nil)
			},
			want: []entity.Participant{
				{ID: "U1", Username: "alice", DisplayName: "alice real", Timezone: "Europe/London"},
				{ID: "U2", Username: "bob", DisplayName: "bob real", Timezone: "America/New_York"},
				{ID: "U3", Username: "charlie", DisplayName: "charlie real", Timezone: "Europe/London"},
			},
		},
		{
			name: "Should exclude deleted, restricted, bot and doughnut accounts",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().GetUsersInConversationContext(gomock.Any(), gomock.Any()).
					Return([]string{"U1", "U2", "U3", "U4", "U5", "U6", "U7"}, "", nil)

				deleted := user("U2", "gone", "UTC")
				deleted.Deleted = true
				guest := user("U3", "guest", "UTC")
				guest.IsRestricted = true
				singleChannelGuest := user("U4", "visitor", "UTC")
				singleChannelGuest.IsUltraRestricted = true
				bot := user("U5", "helper", "UTC")
				bot.IsBot = true

				client.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(user("U1", "alice", "UTC"), nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U2").Return(deleted, nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U3").Return(guest, nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U4").Return(singleChannelGuest, nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U5").Return(bot, nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U6").Return(user("U6", "_doughnut", "UTC"), nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U7").Return(user("U7", "donut-bot", "UTC"), nil)
			},
			want: []entity.Participant{
				{ID: "U1", Username: "alice", DisplayName: "alice real", Timezone: "UTC"},
			},
		},
		{
			name: "Should fall back to profile names",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().GetUsersInConversationContext(gomock.Any(), gomock.Any()).Return([]string{"U1", "U2"}, "", nil)

				withDisplayName := &slack.User{ID: "U1", Name: "alice"}
				withDisplayName.Profile.DisplayName = "Ali"
				bare := &slack.User{ID: "U2", Name: "bob"}

				client.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(withDisplayName, nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U2").Return(bare, nil)
			},
			want: []entity.Participant{
				{ID: "U1", Username: "alice", DisplayName: "Ali"},
				{ID: "U2", Username: "bob", DisplayName: "bob"},
			},
		},
		{
			name: "Should return empty roster for empty channel",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().GetUsersInConversationContext(gomock.Any(), gomock.Any()).Return(nil, "", nil)
			},
			want: []entity.Participant{},
		},
		{
			name: "Should fail when members cannot be listed",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().GetUsersInConversationContext(gomock.Any(), gomock.Any()).
					Return(nil, "", errors.New("channel_not_found"))
			},
			wantErr: true,
		},
		{
			name: "Should fail when a user lookup fails",
			args: args{channelID: "C1"},
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().GetUsersInConversationContext(gomock.Any(), gomock.Any()).Return([]string{"U1", "U2"}, "", nil)
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(user("U1", "alice", "UTC"), nil).AnyTimes()
				client.EXPECT().GetUserInfoContext(gomock.Any(), "U2").Return(nil, errors.New("ratelimited")).AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockSlackClient(ctrl)
			tt.buildMock(client)

			r := NewSlackRoster(client, 2, logger.NewNop())
			got, err := r.ListEligibleParticipants(context.Background(), tt.args.channelID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
