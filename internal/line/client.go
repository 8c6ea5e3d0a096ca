package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultAPIBaseURL is the production messaging API endpoint.
const DefaultAPIBaseURL = "https://api.line.me"

const defaultHTTPTimeout = 10 * time.Second

// Client calls the messaging platform REST API. All requests carry the
// channel access token as a bearer credential.
type Client struct {
	channelToken string
	baseURL      string
	httpClient   *http.Client
	log          *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a platform API client authorized by channelToken.
func NewClient(channelToken string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		channelToken: channelToken,
		baseURL:      DefaultAPIBaseURL,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		log:          log.With("component", "line_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// ReplyMessage sends text bound to an event's reply token. The token is only
// usable within the platform's reply window.
func (c *Client) ReplyMessage(ctx context.Context, replyToken, text string) error {
	body := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	}
	return c.post(ctx, "/v2/bot/message/reply", body)
}

// PushMessage sends text to a conversation or user at an arbitrary time.
func (c *Client) PushMessage(ctx context.Context, to, text string) error {
	body := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	}
	return c.post(ctx, "/v2/bot/message/push", body)
}

// GetProfile fetches a user's profile for one-to-one conversations.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return c.getProfile(ctx, "/v2/bot/profile/"+userID)
}

// GetGroupMemberProfile fetches a member's profile within a group.
func (c *Client) GetGroupMemberProfile(ctx context.Context, groupID, userID string) (*Profile, error) {
	return c.getProfile(ctx, "/v2/bot/group/"+groupID+"/member/"+userID)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("platform API %s returned status %d: %s", path, resp.StatusCode, detail)
	}

	c.log.DebugContext(ctx, "Platform API call succeeded", "path", path, "status", resp.StatusCode)
	return nil
}

func (c *Client) getProfile(ctx context.Context, path string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("platform API %s returned status %d: %s", path, resp.StatusCode, detail)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &profile, nil
}
