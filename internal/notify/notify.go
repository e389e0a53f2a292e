// Package notify delivers player-facing text payloads produced by the core
// (level-ups, heist payouts, theft outcomes) to the frontend. Delivery is
// fire-and-forget; the core never fails an operation over a notification.
package notify

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/streetwars/economy/pkg/clients"
)

type Notifier interface {
	NotifyAccount(ctx context.Context, accountID int64, text string)
	NotifyRoom(ctx context.Context, roomID int64, text string)
}

// LogNotifier is the default sink when no frontend webhook is configured.
type LogNotifier struct{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) NotifyAccount(_ context.Context, accountID int64, text string) {
	zap.L().Info("notify account", zap.Int64("accountID", accountID), zap.String("text", text))
}

func (LogNotifier) NotifyRoom(_ context.Context, roomID int64, text string) {
	zap.L().Info("notify room", zap.Int64("roomID", roomID), zap.String("text", text))
}

type payload struct {
	AccountID int64  `json:"account_id,omitempty"`
	RoomID    int64  `json:"room_id,omitempty"`
	Text      string `json:"text"`
}

// WebhookNotifier posts payloads to the bot frontend.
type WebhookNotifier struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookNotifier(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: client,
	}
}

func (n *WebhookNotifier) send(p payload) {
	body, err := json.Marshal(p)
	if err != nil {
		zap.L().Error("can't marshal notification", zap.Error(err))
		return
	}
	status, _, err := n.client.Post(n.url, "application/json", body)
	if err != nil {
		zap.L().Error("can't deliver notification", zap.Error(err))
		return
	}
	if status != http.StatusOK {
		zap.L().Warn("notification rejected by frontend", zap.Int("status", status))
	}
}

func (n *WebhookNotifier) NotifyAccount(_ context.Context, accountID int64, text string) {
	n.send(payload{AccountID: accountID, Text: text})
}

func (n *WebhookNotifier) NotifyRoom(_ context.Context, roomID int64, text string) {
	n.send(payload{RoomID: roomID, Text: text})
}
