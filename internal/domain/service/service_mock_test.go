package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/matching"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/diegoclair/slack-doughnut-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow     = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	testToday   = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	testChannel = entity.Channel{SlackChannelID: "C015239UFM2", Name: "donuts"}
)

type allMocks struct {
	mockRoster   *mocks.MockRosterProvider
	mockHistory  *mocks.MockHistoryStore
	mockNotifier *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T, settings Settings) (m allMocks, s *doughnutService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockRoster:   mocks.NewMockRosterProvider(ctrl),
		mockHistory:  mocks.NewMockHistoryStore(ctrl),
		mockNotifier: mocks.NewMockNotifier(ctrl),
	}

	s = newDoughnut(Dependencies{
		Roster:   m.mockRoster,
		History:  m.mockHistory,
		Notifier: m.mockNotifier,
		Engine:   matching.New(matching.WithSeed(42)),
	}, settings, logger.NewNop())
	require.NotNil(t, s)

	s.now = func() time.Time { return testNow }

	return
}

func defaultSettings() Settings {
	return Settings{DaysBetweenRuns: 14, PromptDays: 7, PostMatches: true}
}

func daysAgo(n int) time.Time {
	return testToday.AddDate(0, 0, -n)
}

func pastPairing(a, b string, matchedOn time.Time, prompted bool) *entity.PastPairing {
	return &entity.PastPairing{ParticipantA: a, NameA: "user " + a, ParticipantB: b, NameB: "user " + b, MatchedOn: matchedOn, Prompted: prompted}
}

// legacyPairing is a pairing read from a history file that only stored usernames.
func legacyPairing(a, b string, matchedOn time.Time, prompted bool) *entity.PastPairing {
	return &entity.PastPairing{ParticipantA: a, NameA: a, ParticipantB: b, NameB: b, MatchedOn: matchedOn, Prompted: prompted}
}

func testRoster() []entity.Participant {
	return []entity.Participant{
		{ID: "U1", Username: "alice", DisplayName: "Alice", Timezone: "Europe/London"},
		{ID: "U2", Username: "bob", DisplayName: "Bob", Timezone: "Europe/London"},
		{ID: "U3", Username: "charlie", DisplayName: "Charlie", Timezone: "America/New_York"},
		{ID: "U4", Username: "dana", DisplayName: "Dana", Timezone: "America/New_York"},
	}
}
