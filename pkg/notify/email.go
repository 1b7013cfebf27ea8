package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"deepindian-led-backend/internal/domain"
)

// Web3FormsConfig configures the email relay backend. Client and Now are
// optional and exist so tests can inject fakes.
type Web3FormsConfig struct {
	Endpoint  string
	AccessKey string
	To        string
	FromName  string
	Client    *http.Client
	Now       func() time.Time
}

// Web3Forms delivers enquiries to the business inbox through the Web3Forms
// relay. When delivery succeeds it triggers the secondary SMS notifier;
// SMS failure is logged and swallowed so it never downgrades the email result.
type Web3Forms struct {
	endpoint  string
	accessKey string
	to        string
	fromName  string
	sms       Notifier
	client    *http.Client
	now       func() time.Time
}

// NewWeb3Forms creates the email relay notifier. sms may be nil when no
// secondary channel is configured.
func NewWeb3Forms(cfg Web3FormsConfig, sms Notifier) *Web3Forms {
	return &Web3Forms{
		endpoint:  cfg.Endpoint,
		accessKey: cfg.AccessKey,
		to:        cfg.To,
		fromName:  cfg.FromName,
		sms:       sms,
		client:    orDefaultClient(cfg.Client),
		now:       orDefaultNow(cfg.Now),
	}
}

// web3FormsPayload is the relay's submission body. The duplicated
// "Customer *" fields and the submission time feed the receiving
// dashboard's field columns.
type web3FormsPayload struct {
	AccessKey       string `json:"access_key"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	To              string `json:"to"`
	Subject         string `json:"subject"`
	FromName        string `json:"from_name"`
	ReplyTo         string `json:"replyto"`
	HTML            string `json:"html"`
	Botcheck        bool   `json:"botcheck"`
	CustomerName    string `json:"Customer Name"`
	CustomerEmail   string `json:"Customer Email"`
	CustomerPhone   string `json:"Customer Phone"`
	CustomerMessage string `json:"Customer Message"`
	SubmissionTime  string `json:"Submission Time"`
}

// emailTemplate is the HTML rendering of the enquiry
const emailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; }
        .header { background: linear-gradient(135deg, #f97316, #fb923c); color: white; padding: 20px; text-align: center; }
        .content { padding: 30px; background: white; }
        .field { padding: 10px 0; border-bottom: 1px solid #eee; }
        .label { font-weight: bold; color: #f97316; }
        .message-box { background: #f8f9fa; padding: 15px; border-left: 4px solid #f97316; margin-top: 10px; white-space: pre-wrap; }
        .footer { background: #f97316; color: white; padding: 15px; text-align: center; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Contact Form Submission</h2>
            <p>Deep Indian LED Website</p>
        </div>
        <div class="content">
            <h3 style="color: #f97316;">Customer Details:</h3>
            <div class="field"><span class="label">Name:</span> {{.Name}}</div>
            <div class="field"><span class="label">Email:</span> <a href="mailto:{{.Email}}" style="color: #f97316;">{{.Email}}</a></div>
            <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
            <h3 style="color: #f97316;">Message:</h3>
            <div class="message-box">{{.Message}}</div>
            <p style="color: #666; font-size: 14px; margin-top: 30px;">
                <strong>Received:</strong> {{.Received}}<br>
                <strong>Source:</strong> Deep Indian LED Website Contact Form
            </p>
        </div>
        <div class="footer">
            <p style="margin: 0;">Quick Action: reply directly to <a href="mailto:{{.Email}}" style="color: white;">{{.Email}}</a></p>
        </div>
    </div>
</body>
</html>`

// textTemplate is the plain-text rendering, kept first in the payload for
// reliable delivery to clients that drop HTML parts
const textTemplate = `
New Contact Form Submission - Deep Indian LEDs
=============================================

Customer Details:
-----------------
Name: %s
Email: %s
Phone: %s

Message:
--------
%s

Additional Information:
-----------------------
Date: %s
Time: %s
Source: Deep Indian LED Website Contact Form

---
This is an automated message from your website contact form.
Please reply directly to the customer's email: %s
`

// Deliver submits the enquiry to the email relay. Success requires both an
// OK status and the relay's own success flag; any other outcome is an error.
func (n *Web3Forms) Deliver(ctx context.Context, enq domain.Enquiry) error {
	now := n.now().In(kolkata)

	textContent := fmt.Sprintf(textTemplate,
		enq.Name, enq.Email, enq.Phone, enq.Message,
		now.Format(longDateLayout), now.Format(clockLayout), enq.Email)

	htmlContent, err := renderEmailHTML(enq, now)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	payload := web3FormsPayload{
		AccessKey:       n.accessKey,
		Name:            enq.Name,
		Email:           enq.Email,
		Phone:           enq.Phone,
		Message:         textContent,
		To:              n.to,
		Subject:         fmt.Sprintf("New Lead: %s - Deep Indian LEDs Contact Form", enq.Name),
		FromName:        n.fromName,
		ReplyTo:         enq.Email,
		HTML:            htmlContent,
		Botcheck:        false,
		CustomerName:    enq.Name,
		CustomerEmail:   enq.Email,
		CustomerPhone:   enq.Phone,
		CustomerMessage: enq.Message,
		SubmissionTime:  now.Format(timestampLayout),
	}

	result, status, err := postJSON(ctx, n.client, n.endpoint, payload)
	if err != nil {
		return fmt.Errorf("email relay request failed: %w", err)
	}

	if status < 200 || status >= 300 || !result.Success {
		if result.Message != "" {
			return fmt.Errorf("email relay rejected submission: %s", result.Message)
		}
		return fmt.Errorf("email relay rejected submission: status %d", status)
	}

	// Best-effort secondary channel; never escalated
	if n.sms != nil {
		if smsErr := n.sms.Deliver(ctx, enq); smsErr != nil {
			slog.Default().Warn("SMS notification failed, but email was sent", "error", smsErr)
		} else {
			slog.Default().Info("SMS notification sent")
		}
	}

	return nil
}

func renderEmailHTML(enq domain.Enquiry, now time.Time) (string, error) {
	tmpl, err := template.New("contact").Parse(emailTemplate)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, struct {
		Name, Email, Phone, Message, Received string
	}{
		Name:     enq.Name,
		Email:    enq.Email,
		Phone:    enq.Phone,
		Message:  enq.Message,
		Received: now.Format(longDateLayout) + ", " + now.Format(clockLayout),
	})
	if err != nil {
		return "", err
	}
	return body.String(), nil
}

// postJSON submits a JSON body and decodes the relay's success envelope.
// A nil error means the HTTP exchange and decode worked; the caller still
// has to interpret the status code and success flag.
func postJSON(ctx context.Context, client *http.Client, endpoint string, payload any) (relayResponse, int, error) {
	var result relayResponse

	body, err := json.Marshal(payload)
	if err != nil {
		return result, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return result, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return result, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, resp.StatusCode, err
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, resp.StatusCode, fmt.Errorf("malformed relay response: %w", err)
	}

	return result, resp.StatusCode, nil
}
