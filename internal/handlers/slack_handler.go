package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-doughnut-bot/internal/domain/slack"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/slack-go/slack"
)

const runTimeout = 5 * time.Minute

// WebhookPoster sends a follow-up message to a slash command response_url.
type WebhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

type Option func(*SlackHandler)

// WithRunner replaces how forced runs are started in the background.
func WithRunner(run func(fn func())) Option {
	return func(h *SlackHandler) {
		h.runAsync = run
	}
}

func WithWebhookPoster(post WebhookPoster) Option {
	return func(h *SlackHandler) {
		h.postWebhook = post
	}
}

type SlackHandler struct {
	doughnutService contract.DoughnutService
	channels        map[string]entity.Channel
	signingSecret   string
	log             *logger.Logger
	runAsync        func(fn func())
	postWebhook     WebhookPoster
}

func New(doughnutService contract.DoughnutService, channels []entity.Channel, signingSecret string, log *logger.Logger, opts ...Option) *SlackHandler {
	byID := make(map[string]entity.Channel, len(channels))
	for _, channel := range channels {
		byID[channel.SlackChannelID] = channel
	}

	h := &SlackHandler{
		doughnutService: doughnutService,
		channels:        byID,
		signingSecret:   signingSecret,
		log:             log,
		runAsync:        func(fn func()) { go fn() },
		postWebhook:     slack.PostWebhookContext,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn("rejected slash command", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.log.Info("slash command", "command", cmd.Type, "channel_id", s.ChannelID, "user_id", s.UserID)
	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	channel, ok := h.channels[slashCmd.ChannelID]
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("This %s. Add it to SLACK_CHANNELS to start matching.", domain.ErrChannelNotConfigured))
	}

	switch cmd.Type {
	case slackcmd.CmdStatus:
		return h.handleStatus(ctx, channel)
	case slackcmd.CmdHistory:
		return h.handleHistory(ctx, channel, cmd.Limit)
	case slackcmd.CmdRun:
		return h.handleRun(channel, slashCmd)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleStatus(ctx context.Context, channel entity.Channel) *slack.Msg {
	status, err := h.doughnutService.Status(ctx, channel)
	if err != nil {
		h.log.Error("failed to get status", "channel_id", channel.SlackChannelID, "error", err)
		return h.createErrorResponse("Error loading doughnut history")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(":doughnut: *Doughnut status for #%s*\n\n", channel.Name))
	if status.TotalPairings == 0 {
		sb.WriteString("No rounds yet. The next run will make the first matches.")
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: sb.String()}
	}

	sb.WriteString(fmt.Sprintf("*Last round:* %s (%d days ago)\n", domain.FormatDate(status.LastMatchedOn), status.DaysSinceLastRun))
	sb.WriteString(fmt.Sprintf("*Pairings recorded:* %d\n", status.TotalPairings))
	sb.WriteString(fmt.Sprintf("*Awaiting halfway check-in:* %d\n", status.AwaitingPrompt))
	sb.WriteString(fmt.Sprintf("*Next run:* %s", describeMode(status.NextMode)))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleHistory(ctx context.Context, channel entity.Channel, limit int) *slack.Msg {
	pairings, err := h.doughnutService.History(ctx, channel, limit)
	if err != nil {
		h.log.Error("failed to get history", "channel_id", channel.SlackChannelID, "error", err)
		return h.createErrorResponse("Error loading doughnut history")
	}

	if len(pairings) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No doughnuts yet. Use `/doughnut run` to make the first matches.",
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Latest %d doughnuts:*\n", len(pairings)))
	for _, p := range pairings {
		check := ""
		if p.Prompted {
			check = " :white_check_mark:"
		}
		sb.WriteString(fmt.Sprintf("• %s: <@%s> and <@%s>%s\n", domain.FormatDate(p.MatchedOn), p.ParticipantA, p.ParticipantB, check))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

// handleRun acknowledges at once and reports the outcome on the response_url,
// since a round can take longer than Slack waits for a reply.
func (h *SlackHandler) handleRun(channel entity.Channel, slashCmd *slack.SlashCommand) *slack.Msg {
	responseURL := slashCmd.ResponseURL

	h.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		text := ""
		report, err := h.doughnutService.RunChannel(ctx, channel)
		if err != nil {
			h.log.Error("forced run failed", "channel_id", channel.SlackChannelID, "error", err)
			text = runErrorMessage(err)
		} else {
			text = describeReport(report)
		}

		if responseURL == "" {
			return
		}
		msg := &slack.WebhookMessage{ResponseType: slack.ResponseTypeEphemeral, Text: text}
		if err := h.postWebhook(ctx, responseURL, msg); err != nil {
			h.log.Error("failed to post run result", "channel_id", channel.SlackChannelID, "error", err)
		}
	})

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         ":doughnut: Running the doughnut check for this channel...",
	}
}

func runErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInsufficientParticipants) {
		return "❌ Not enough people in this channel to make a doughnut."
	}
	return "❌ The doughnut run failed. Check the bot logs for details."
}

func describeMode(mode entity.RunMode) string {
	switch mode {
	case entity.RunModeMatch:
		return "new round of matches"
	case entity.RunModePrompt:
		return "halfway check-in"
	default:
		return "nothing due yet"
	}
}

func describeReport(report *entity.RunReport) string {
	var text string
	switch report.Mode {
	case entity.RunModeMatch:
		text = fmt.Sprintf("✅ New round: %d doughnuts matched.", len(report.Round.Pairs))
	case entity.RunModePrompt:
		text = fmt.Sprintf("✅ Halfway check-in sent to %d pairs.", len(report.Prompted))
	default:
		text = fmt.Sprintf("Nothing to do, the last round was %d days ago.", report.DaysSinceLastRun)
	}

	if failed := report.FailedDeliveries(); failed > 0 {
		text += fmt.Sprintf(" %d messages could not be delivered.", failed)
	}
	if report.DryRun {
		text += " (publishing is disabled, nothing was posted)"
	}
	return text
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("failed to write slash command response", "error", err)
	}
}
