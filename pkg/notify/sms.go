package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"deepindian-led-backend/internal/domain"
)

// smsMessageLimit caps how much of the enquiry message goes into the SMS summary
const smsMessageLimit = 100

// TextbeltConfig configures the Textbelt SMS backend
type TextbeltConfig struct {
	Endpoint string
	APIKey   string
	To       string // business phone receiving lead alerts
	Client   *http.Client
	Now      func() time.Time
}

// Textbelt sends a short lead summary to the business phone via the
// Textbelt SMS relay
type Textbelt struct {
	endpoint string
	apiKey   string
	to       string
	client   *http.Client
	now      func() time.Time
}

func NewTextbelt(cfg TextbeltConfig) *Textbelt {
	return &Textbelt{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		to:       cfg.To,
		client:   orDefaultClient(cfg.Client),
		now:      orDefaultNow(cfg.Now),
	}
}

type textbeltPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Key     string `json:"key"`
}

// Deliver submits the SMS summary. Success is the relay's own success flag;
// Textbelt reports quota and key problems with HTTP 200 and success=false.
func (n *Textbelt) Deliver(ctx context.Context, enq domain.Enquiry) error {
	payload := textbeltPayload{
		Phone:   n.to,
		Message: smsSummary(enq, n.now().In(kolkata)),
		Key:     n.apiKey,
	}

	result, _, err := postJSON(ctx, n.client, n.endpoint, payload)
	if err != nil {
		return fmt.Errorf("sms relay request failed: %w", err)
	}

	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("sms relay rejected message: %s", result.Error)
		}
		return fmt.Errorf("sms relay rejected message")
	}

	return nil
}

// smsSummary builds the short lead alert: contact details, the first
// hundred characters of the message, the localized time and the reply address
func smsSummary(enq domain.Enquiry, now time.Time) string {
	return fmt.Sprintf(`NEW LEAD - Deep Indian LEDs

Name: %s
Email: %s
Phone: %s

"%s"

%s

Reply to customer: %s`,
		enq.Name, enq.Email, enq.Phone,
		truncate(enq.Message, smsMessageLimit),
		now.Format(timestampLayout),
		enq.Email)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Web3FormsSMSConfig configures the alternate SMS path that reuses the
// unified Web3Forms relay instead of a dedicated SMS provider
type Web3FormsSMSConfig struct {
	Endpoint  string
	AccessKey string
	To        string // business phone receiving lead alerts
	FromName  string
	Client    *http.Client
}

// Web3FormsSMS submits the lead summary through the same relay used for
// email, distinguished by the sms flag and destination fields. It is
// interchangeable with Textbelt behind the Notifier contract.
type Web3FormsSMS struct {
	endpoint  string
	accessKey string
	to        string
	fromName  string
	client    *http.Client
}

func NewWeb3FormsSMS(cfg Web3FormsSMSConfig) *Web3FormsSMS {
	return &Web3FormsSMS{
		endpoint:  cfg.Endpoint,
		accessKey: cfg.AccessKey,
		to:        cfg.To,
		fromName:  cfg.FromName,
		client:    orDefaultClient(cfg.Client),
	}
}

type web3FormsSMSPayload struct {
	AccessKey  string `json:"access_key"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	To         string `json:"to"`
	FromName   string `json:"from_name"`
	Botcheck   bool   `json:"botcheck"`
	SMS        bool   `json:"sms"`
	SMSTo      string `json:"sms_to"`
	SMSMessage string `json:"sms_message"`
}

func (n *Web3FormsSMS) Deliver(ctx context.Context, enq domain.Enquiry) error {
	content := fmt.Sprintf(
		"NEW LEAD: %s (%s) interested in Deep Indian LEDs. Email: %s. Check email for full details.",
		enq.Name, enq.Phone, enq.Email)

	payload := web3FormsSMSPayload{
		AccessKey:  n.accessKey,
		Subject:    "SMS Notification - New Lead",
		Message:    content,
		To:         n.to,
		FromName:   n.fromName,
		Botcheck:   false,
		SMS:        true,
		SMSTo:      n.to,
		SMSMessage: content,
	}

	result, _, err := postJSON(ctx, n.client, n.endpoint, payload)
	if err != nil {
		return fmt.Errorf("sms relay request failed: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("sms relay rejected message")
	}
	return nil
}
