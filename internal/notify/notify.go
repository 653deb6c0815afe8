// Package notify delivers doughnut rounds and halfway prompts over Slack.
package notify

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// OrganiserFunc picks who of the two participants sets up the meeting.
type OrganiserFunc func(a, b string) string

// RandomOrganiser picks either participant with equal probability.
func RandomOrganiser(rng *rand.Rand) OrganiserFunc {
	var mu sync.Mutex
	return func(a, b string) string {
		mu.Lock()
		defer mu.Unlock()
		if rng.Intn(2) == 0 {
			return a
		}
		return b
	}
}

type Option func(*SlackNotifier)

func WithWorkers(n int) Option {
	return func(s *SlackNotifier) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithOrganiser(fn OrganiserFunc) Option {
	return func(s *SlackNotifier) {
		s.organiser = fn
	}
}

type SlackNotifier struct {
	client    contract.SlackClient
	workers   int
	organiser OrganiserFunc
	log       *logger.Logger
}

func NewSlackNotifier(client contract.SlackClient, log *logger.Logger, opts ...Option) *SlackNotifier {
	s := &SlackNotifier{
		client:    client,
		workers:   defaultWorkers,
		organiser: RandomOrganiser(rand.New(rand.NewSource(rand.Int63()))),
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnnounceRound opens a DM for every pair, then posts the round summary to the
// channel. Pair failures are returned per pair; the error only reports the summary post.
func (s *SlackNotifier) AnnounceRound(ctx context.Context, channelID string, round *entity.MatchRound) ([]entity.DeliveryResult, error) {
	results := make([]entity.DeliveryResult, len(round.Pairs))

	s.fanOut(ctx, len(round.Pairs), func(ctx context.Context, i int) {
		pair := round.Pairs[i]
		results[i] = entity.DeliveryResult{
			Pair: pair.Key(),
			Err:  s.sendMatch(ctx, pair),
		}
	})

	for _, result := range results {
		if !result.Delivered() {
			s.log.Error("failed to deliver match", "channel_id", channelID, "pair", result.Pair.String(), "error", result.Err)
		}
	}

	_, _, err := s.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(summaryMessage(round), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return results, fmt.Errorf("failed to post round summary: %w", err)
	}

	s.log.Info("round announced", "channel_id", channelID, "pairs", len(round.Pairs))
	return results, nil
}

func (s *SlackNotifier) sendMatch(ctx context.Context, pair entity.CandidatePair) error {
	a, b := pair.A.ID, pair.B.ID

	conversationID, err := s.openConversation(ctx, a, b)
	if err != nil {
		return &domain.DeliveryError{Pair: pair.Key(), Step: "conversation", Err: err}
	}

	if err := s.post(ctx, conversationID, domain.MatchPreviewMessage, welcomeMessage(a, b)); err != nil {
		return &domain.DeliveryError{Pair: pair.Key(), Step: "welcome message", Err: err}
	}
	if err := s.post(ctx, conversationID, "", organiserMessage(s.organiser(a, b))); err != nil {
		return &domain.DeliveryError{Pair: pair.Key(), Step: "organiser message", Err: err}
	}
	return nil
}

// SendDirectPrompt sends the halfway check-in to the pair's DM.
func (s *SlackNotifier) SendDirectPrompt(ctx context.Context, pairing *entity.PastPairing) error {
	conversationID, err := s.openConversation(ctx, pairing.ParticipantA, pairing.ParticipantB)
	if err != nil {
		return &domain.DeliveryError{Pair: pairing.Key(), Step: "conversation", Err: err}
	}

	if err := s.post(ctx, conversationID, domain.PromptPreviewMessage, domain.PromptMessage); err != nil {
		return &domain.DeliveryError{Pair: pairing.Key(), Step: "prompt", Err: err}
	}
	return nil
}

func (s *SlackNotifier) SendPrompts(ctx context.Context, pairings []*entity.PastPairing) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, len(pairings))

	s.fanOut(ctx, len(pairings), func(ctx context.Context, i int) {
		err := s.SendDirectPrompt(ctx, pairings[i])
		if err != nil {
			s.log.Error("failed to deliver prompt", "pair", pairings[i].Key().String(), "error", err)
		}
		results[i] = entity.DeliveryResult{Pair: pairings[i].Key(), Err: err}
	})

	return results
}

// fanOut runs fn for every index on the worker pool. fn records its own
// failure, so one pair never cancels the others.
func (s *SlackNotifier) fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *SlackNotifier) openConversation(ctx context.Context, a, b string) (string, error) {
	channel, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users:    []string{a, b},
		ReturnIM: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open conversation: %w", err)
	}
	return channel.ID, nil
}

// post sends text to a conversation. With a preview, the preview becomes the
// notification text and text is sent as a section block.
func (s *SlackNotifier) post(ctx context.Context, conversationID, preview, text string) error {
	opts := []slack.MsgOption{slack.MsgOptionAsUser(false)}
	if preview == "" {
		opts = append(opts, slack.MsgOptionText(text, false))
	} else {
		opts = append(opts,
			slack.MsgOptionText(preview, false),
			slack.MsgOptionBlocks(
				slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
			),
		)
	}

	if _, _, err := s.client.PostMessageContext(ctx, conversationID, opts...); err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}
