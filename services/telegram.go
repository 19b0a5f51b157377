package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NotificationKind selects which of the two fixed message templates is built.
type NotificationKind string

const (
	NotificationContact NotificationKind = "contact"
	NotificationQuote   NotificationKind = "quote"
)

// DefaultTelegramAPIBase is the hosted bot API. Overridable for tests and
// self-hosted bot API servers.
const DefaultTelegramAPIBase = "https://api.telegram.org"

// Failure kinds for Send. HTTP callers collapse both into the same failure
// response; the split exists so logs can tell a deployment problem from a
// transient one.
var (
	ErrNotConfigured = errors.New("telegram credentials not configured")
	ErrSendFailed    = errors.New("telegram send failed")
)

// NotificationFields carries the form submission being forwarded. Missing
// optional fields render as "N/A" in the message.
type NotificationFields struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Message  string `json:"message,omitempty"`
	Service  string `json:"service,omitempty"`
	Budget   string `json:"budget,omitempty"`
	Timeline string `json:"timeline,omitempty"`
}

type telegramSendRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Notifier forwards form submissions as single Markdown messages to a
// Telegram chat. One best-effort POST per submission; no retry, no backoff.
type Notifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
	logger   zerolog.Logger
}

// NewNotifier builds a Notifier. Empty botToken or chatID is allowed; Send
// then fails with ErrNotConfigured so the intake degrades instead of the
// process refusing to start.
func NewNotifier(botToken, chatID, apiBase string) *Notifier {
	if apiBase == "" {
		apiBase = DefaultTelegramAPIBase
	}
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  strings.TrimSuffix(apiBase, "/"),
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   log.With().Str("service", "telegramNotifier").Logger(),
	}
}

// Send builds the message for kind and posts it to the chat. All failure
// paths are logged and returned as either ErrNotConfigured or ErrSendFailed.
func (n *Notifier) Send(kind NotificationKind, fields NotificationFields) error {
	if n.botToken == "" || n.chatID == "" {
		n.logger.Error().Msg("Telegram credentials not configured")
		return ErrNotConfigured
	}

	payload := telegramSendRequest{
		ChatID:    n.chatID,
		Text:      BuildMessage(kind, fields, time.Now()),
		ParseMode: "Markdown",
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error().Err(err).Msg("Failed to marshal Telegram payload")
		return ErrSendFailed
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	resp, err := n.client.Post(url, "application/json", bytes.NewBuffer(jsonPayload))
	if err != nil {
		n.logger.Error().Err(err).Msg("Failed to send Telegram notification")
		return ErrSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		n.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(bodyBytes)).
			Msg("Telegram API returned non-success status")
		return ErrSendFailed
	}

	n.logger.Info().Str("kind", string(kind)).Msg("Notification forwarded to Telegram")
	return nil
}

// maldivesTime renders a timestamp the way the site's operators read it.
func maldivesTime(t time.Time) string {
	loc, err := time.LoadLocation("Indian/Maldives")
	if err != nil {
		loc = time.FixedZone("MVT", 5*60*60)
	}
	return t.In(loc).Format("1/2/2006, 3:04:05 PM")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// BuildMessage renders one of the two fixed Markdown templates.
func BuildMessage(kind NotificationKind, fields NotificationFields, now time.Time) string {
	message := fields.Message
	if message == "" {
		message = "No message provided"
	}

	switch kind {
	case NotificationQuote:
		return strings.TrimSpace(fmt.Sprintf(`💼 *New Quote Request*

👤 *Name:* %s
📧 *Email:* %s
📱 *Phone:* %s
🏢 *Company:* %s
🛠️ *Service:* %s
💰 *Budget:* %s
⏱️ *Timeline:* %s

💬 *Message:*
%s

---
📅 %s`,
			fields.Name,
			orNA(fields.Email),
			orNA(fields.Phone),
			orNA(fields.Company),
			orNA(fields.Service),
			orNA(fields.Budget),
			orNA(fields.Timeline),
			message,
			maldivesTime(now)))
	default:
		return strings.TrimSpace(fmt.Sprintf(`🔔 *New Contact Form Submission*

👤 *Name:* %s
📧 *Email:* %s
📱 *Phone:* %s
🏢 *Company:* %s

💬 *Message:*
%s

---
📅 %s`,
			fields.Name,
			orNA(fields.Email),
			orNA(fields.Phone),
			orNA(fields.Company),
			message,
			maldivesTime(now)))
	}
}
