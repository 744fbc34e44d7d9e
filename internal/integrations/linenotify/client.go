package linenotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент LINE Messaging API для push-уведомлений
type Client struct {
	baseURL      string
	channelToken string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента LINE
func NewClient(baseURL string, channelToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		channelToken: channelToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PushMessage отправляет текстовое сообщение пользователю LINE
func (c *Client) PushMessage(ctx context.Context, to string, text string) error {
	body, err := json.Marshal(pushRequest{
		To:       to,
		Messages: []message{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v2/bot/message/push", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)

		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// PushMessageWithGracefulDegradation отправляет уведомление с graceful degradation
// Недоставленное уведомление не должно ломать бизнес-операцию: при любой ошибке
// возвращается ErrServiceDegraded, вызывающая сторона продолжает работу
func (c *Client) PushMessageWithGracefulDegradation(ctx context.Context, to string, text string) error {
	if err := c.PushMessage(ctx, to, text); err != nil {
		c.log.Error("LINE API unavailable, applying graceful degradation for to=%s: %v", to, err)
		return fmt.Errorf("%w: to=%s, error=%v", ErrServiceDegraded, to, err)
	}

	c.log.Info("Successfully pushed LINE message to=%s", to)
	return nil
}
