package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/matching"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/diegoclair/slack-doughnut-bot/internal/prompting"
	"github.com/google/uuid"
)

// Settings control the run cadence of every channel.
type Settings struct {
	DaysBetweenRuns int
	PromptDays      int
	// PostMatches disables every Slack post when false. Histories are still written.
	PostMatches bool
}

type doughnutService struct {
	roster   contract.RosterProvider
	history  contract.HistoryStore
	notifier contract.Notifier
	engine   *matching.Engine
	settings Settings
	log      *logger.Logger
	now      func() time.Time

	// one run at a time, whether it comes from the scheduler or a slash command
	mu sync.Mutex
}

func newDoughnut(deps Dependencies, settings Settings, log *logger.Logger) *doughnutService {
	return &doughnutService{
		roster:   deps.Roster,
		history:  deps.History,
		notifier: deps.Notifier,
		engine:   deps.Engine,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// decideMode works out what a run should do from the age of the newest pairing.
// A channel without history is always matched.
func decideMode(history *entity.PairingHistory, today time.Time, settings Settings) (entity.RunMode, int) {
	if history.Len() == 0 {
		return entity.RunModeMatch, 0
	}

	days := domain.DaysBetween(today, history.LastMatchedOn())
	switch {
	case days < settings.PromptDays:
		return entity.RunModeIdle, days
	case days >= settings.DaysBetweenRuns:
		return entity.RunModeMatch, days
	default:
		return entity.RunModePrompt, days
	}
}

func (s *doughnutService) RunChannel(ctx context.Context, channel entity.Channel) (*entity.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.With("run_id", uuid.NewString(), "channel", channel.Name, "channel_id", channel.SlackChannelID)
	today := domain.DateOf(s.now())

	history, err := s.history.Load(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	mode, days := decideMode(history, today, s.settings)
	report := &entity.RunReport{
		Channel:          channel,
		Mode:             mode,
		RanOn:            today,
		DaysSinceLastRun: days,
		DryRun:           !s.settings.PostMatches,
	}
	log.Info("starting run", "mode", mode, "days_since_last_run", days, "dry_run", report.DryRun)

	switch mode {
	case entity.RunModeMatch:
		err = s.match(ctx, channel, history, report, log)
	case entity.RunModePrompt:
		err = s.prompt(ctx, channel, history, report, log)
	default:
		log.Info("nothing to do", "days_since_last_run", days)
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

// match computes a new round, commits it to history and then announces it.
// Delivery failures are reported but never undo the round.
func (s *doughnutService) match(ctx context.Context, channel entity.Channel, history *entity.PairingHistory, report *entity.RunReport, log *logger.Logger) error {
	roster, err := s.roster.ListEligibleParticipants(ctx, channel.SlackChannelID)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}

	if resolved := resolveLegacyPairings(history, roster); resolved > 0 {
		log.Info("resolved legacy history entries", "pairings", resolved)
	}

	round, err := s.engine.ComputeMatches(roster, history, report.RanOn)
	if err != nil {
		return fmt.Errorf("failed to compute matches: %w", err)
	}
	report.Round = round

	for _, pair := range round.Pairs {
		log.Info("matched", "a", pair.A.DisplayName, "b", pair.B.DisplayName,
			"prior_count", pair.PriorCount, "different_timezone", pair.DifferentTimezone)
	}

	history.Append(round.ToPastPairings()...)
	if err := s.history.Save(ctx, channel, history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	if !s.settings.PostMatches {
		log.Info("publishing disabled, round not posted", "pairs", len(round.Pairs))
		return nil
	}

	deliveries, err := s.notifier.AnnounceRound(ctx, channel.SlackChannelID, round)
	report.Deliveries = deliveries
	if err != nil {
		log.Error("failed to announce round", "error", err)
	}
	log.Info("round complete", "pairs", len(round.Pairs), "failed_deliveries", report.FailedDeliveries())
	return nil
}

// prompt checks in on pairings older than the prompt threshold. Selected
// pairings are flagged even when their message cannot be delivered.
func (s *doughnutService) prompt(ctx context.Context, channel entity.Channel, history *entity.PairingHistory, report *entity.RunReport, log *logger.Logger) error {
	resolved := s.resolveForPrompt(ctx, channel, history, log)

	selected := prompting.SelectForPrompt(history, report.RanOn, s.settings.PromptDays)
	report.Prompted = selected
	if len(selected) == 0 {
		log.Info("no matches require prompting")
		if resolved == 0 {
			return nil
		}
		if err := s.history.Save(ctx, channel, history); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		return nil
	}

	if s.settings.PostMatches {
		report.Deliveries = s.notifier.SendPrompts(ctx, selected)
	} else {
		log.Info("publishing disabled, prompts not sent", "pairings", len(selected))
	}

	if err := s.history.Save(ctx, channel, history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	log.Info("prompts complete", "pairings", len(selected), "failed_deliveries", report.FailedDeliveries())
	return nil
}

// resolveForPrompt looks the roster up only when there are unprompted
// name-keyed pairings. Without a roster those prompts are still attempted and
// fail per pairing.
func (s *doughnutService) resolveForPrompt(ctx context.Context, channel entity.Channel, history *entity.PairingHistory, log *logger.Logger) int {
	pending := false
	for _, p := range history.Pairings {
		if !p.Prompted && p.Legacy() {
			pending = true
			break
		}
	}
	if !pending {
		return 0
	}

	roster, err := s.roster.ListEligibleParticipants(ctx, channel.SlackChannelID)
	if err != nil {
		log.Warn("failed to list participants, legacy history entries left unresolved", "error", err)
		return 0
	}

	resolved := resolveLegacyPairings(history, roster)
	if resolved > 0 {
		log.Info("resolved legacy history entries", "pairings", resolved)
	}
	return resolved
}

// resolveLegacyPairings rewrites name-keyed pairings to the ids of the roster
// members with that username. Names not on the roster stay as they are.
func resolveLegacyPairings(history *entity.PairingHistory, roster []entity.Participant) int {
	ids := make(map[string]string, len(roster))
	for _, p := range roster {
		if p.Username != "" {
			ids[p.Username] = p.ID
		}
	}

	resolved := 0
	for _, p := range history.Pairings {
		if !p.Legacy() {
			continue
		}
		changed := false
		if id, ok := ids[p.NameA]; ok && p.ParticipantA == p.NameA {
			p.ParticipantA = id
			changed = true
		}
		if id, ok := ids[p.NameB]; ok && p.ParticipantB == p.NameB {
			p.ParticipantB = id
			changed = true
		}
		if changed {
			resolved++
		}
	}
	return resolved
}

func (s *doughnutService) Status(ctx context.Context, channel entity.Channel) (*entity.ChannelStatus, error) {
	history, err := s.history.Load(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	mode, days := decideMode(history, domain.DateOf(s.now()), s.settings)
	return &entity.ChannelStatus{
		Channel:          channel,
		LastMatchedOn:    history.LastMatchedOn(),
		DaysSinceLastRun: days,
		NextMode:         mode,
		TotalPairings:    history.Len(),
		AwaitingPrompt:   history.AwaitingPrompt(),
	}, nil
}

// History returns up to limit of the newest pairings, newest first.
func (s *doughnutService) History(ctx context.Context, channel entity.Channel, limit int) ([]*entity.PastPairing, error) {
	history, err := s.history.Load(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return history.Latest(limit), nil
}
