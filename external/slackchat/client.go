package slackchat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/platform/resilience"
)

const defaultBaseURL = "https://slack.com/api"

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	BotToken       string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client posts messages through the Slack Web API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

// AuthInfo is the subset of auth.test used to confirm connectivity.
type AuthInfo struct {
	User string `json:"user"`
	Team string `json:"team"`
}

type postMessageRequest struct {
	Channel  string  `json:"channel"`
	Text     string  `json:"text"`
	Blocks   []Block `json:"blocks,omitempty"`
	ThreadTS string  `json:"thread_ts,omitempty"`
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	TS    string `json:"ts"`
	Error string `json:"error"`
}

type authTestResponse struct {
	OK    bool   `json:"ok"`
	User  string `json:"user"`
	Team  string `json:"team"`
	Error string `json:"error"`
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.BotToken),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// TestAuth confirms the bot token is valid and returns the workspace
// identity Slack reports for it.
func (c *Client) TestAuth(ctx context.Context) (AuthInfo, error) {
	var resp authTestResponse
	if err := c.post(ctx, "/auth.test", struct{}{}, &resp); err != nil {
		return AuthInfo{}, err
	}
	if !resp.OK {
		return AuthInfo{}, crerr.Newf("slack auth.test failed: %s", resp.Error)
	}
	return AuthInfo{User: resp.User, Team: resp.Team}, nil
}

// PostMessage sends one message and returns its timestamp handle. A
// non-empty threadTS posts the message as a threaded reply.
func (c *Client) PostMessage(ctx context.Context, channel, text string, blocks []Block, threadTS string) (string, error) {
	if strings.TrimSpace(channel) == "" {
		return "", crerr.New("channel is required")
	}
	if strings.TrimSpace(text) == "" {
		return "", crerr.New("message text is required")
	}

	payload := postMessageRequest{
		Channel:  channel,
		Text:     text,
		Blocks:   blocks,
		ThreadTS: threadTS,
	}

	var resp postMessageResponse
	if err := c.post(ctx, "/chat.postMessage", payload, &resp); err != nil {
		return "", err
	}
	if !resp.OK {
		return "", crerr.Newf("slack chat.postMessage failed: %s", resp.Error)
	}

	return resp.TS, nil
}

// PostGameWithThread posts the parent message and, when threadText is
// non-empty, a threaded reply referencing it. The parent timestamp is
// returned either way.
func (c *Client) PostGameWithThread(ctx context.Context, channel, parentText, threadText string, parentBlocks, threadBlocks []Block) (parentTS, threadTS string, err error) {
	parentTS, err = c.PostMessage(ctx, channel, parentText, parentBlocks, "")
	if err != nil {
		return "", "", crerr.Wrap(err, "post parent message")
	}

	if strings.TrimSpace(threadText) == "" {
		return parentTS, "", nil
	}

	threadTS, err = c.PostMessage(ctx, channel, threadText, threadBlocks, parentTS)
	if err != nil {
		return parentTS, "", crerr.Wrap(err, "post thread reply")
	}

	return parentTS, threadTS, nil
}

func (c *Client) post(ctx context.Context, path string, payload, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "slack circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("slack is temporarily unavailable: %w", err)
		}
	}

	body, err := encodePayload(payload)
	defer bytebufferpool.Put(body)
	if err != nil {
		return crerr.Wrap(err, "marshal slack payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(body.String()))
	if err != nil {
		return crerr.Wrap(err, "build slack request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordOutcome(false)
		return crerr.Wrap(err, "send slack request")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.recordOutcome(false)
		return crerr.Wrap(err, "read slack response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.recordOutcome(resp.StatusCode < 500)
		return crerr.Newf("slack status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	c.recordOutcome(true)

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode slack response")
	}

	return nil
}

func (c *Client) recordOutcome(ok bool) {
	if !c.circuitEnabled {
		return
	}
	if ok {
		c.breaker.RecordSuccess()
	} else {
		c.breaker.RecordFailure()
	}
}

func encodePayload(payload any) (*bytebufferpool.ByteBuffer, error) {
	buf := bytebufferpool.Get()
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return buf, err
	}
	_, _ = buf.Write(raw)
	return buf, nil
}
