package test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/handlers"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/diegoclair/slack-doughnut-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestChannel is the only channel the test handler serves.
var TestChannel = entity.Channel{SlackChannelID: "C123456789", Name: "donuts"}

const (
	SigningSecret = "test-signing-secret"
	ResponseURL   = "https://hooks.slack.com/commands/test"
)

type ServiceMocks struct {
	DoughnutServiceMock *mocks.MockDoughnutService
	Webhooks            *WebhookRecorder
}

// WebhookRecorder captures follow-up messages sent to response urls.
type WebhookRecorder struct {
	mu       sync.Mutex
	Messages map[string][]*slack.WebhookMessage
}

func (r *WebhookRecorder) Post(ctx context.Context, url string, msg *slack.WebhookMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages[url] = append(r.Messages[url], msg)
	return nil
}

// GetHandlerTest builds a handler whose forced runs complete before the request returns.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		DoughnutServiceMock: mocks.NewMockDoughnutService(ctrl),
		Webhooks:            &WebhookRecorder{Messages: make(map[string][]*slack.WebhookMessage)},
	}

	handler = handlers.New(m.DoughnutServiceMock, []entity.Channel{TestChannel}, SigningSecret, logger.NewNop(),
		handlers.WithRunner(func(fn func()) { fn() }),
		handlers.WithWebhookPoster(m.Webhooks.Post),
	)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, channelID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"donuts"},
		"user_id":      {"U987654321"},
		"user_name":    {"test-user"},
		"command":      {"/doughnut"},
		"text":         {text},
		"response_url": {ResponseURL},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}