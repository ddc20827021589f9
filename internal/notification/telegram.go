package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"techstore/internal/config"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramClient posts messages through the Telegram Bot API
type TelegramClient struct {
	config config.TelegramConfig
	logger *slog.Logger
	client *http.Client
}

// NewTelegramClient creates a new Telegram client
func NewTelegramClient(cfg config.TelegramConfig, logger *slog.Logger) *TelegramClient {
	return &TelegramClient{
		config: cfg,
		logger: logger,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts a message to the given chat
func (t *TelegramClient) SendMessage(ctx context.Context, chatID, text string) error {
	payload := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, t.config.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("failed to create Telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}
	defer resp.Body.Close()

	var result telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse Telegram response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("Telegram API returned status %d: %s", resp.StatusCode, result.Description)
	}

	t.logger.Debug("Telegram message sent", "chat_id", chatID)
	return nil
}
