package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://api.telegram.org"

// Client posts messages to a single chat through the Bot API. It is
// fire-once: one POST per Send, no retry, transport-default timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
}

// Config for the Bot API client. BaseURL is overridden only in tests.
type Config struct {
	Token   string
	ChatID  string
	BaseURL string
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		token:      cfg.Token,
		chatID:     cfg.ChatID,
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send delivers one text message to the configured chat. The Bot API
// reports application failures as {ok:false, description}; when that body
// is parseable the description wins over the generic HTTP status.
func (c *Client) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                c.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("telegram: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	var payload sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("telegram: sendMessage returned status %d", resp.StatusCode)
	}
	if !payload.OK {
		if payload.Description != "" {
			return fmt.Errorf("telegram: %s", payload.Description)
		}
		return fmt.Errorf("telegram: sendMessage returned status %d", resp.StatusCode)
	}

	return nil
}
