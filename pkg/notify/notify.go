// Package notify delivers enquiry notifications through third-party relay
// endpoints. All backends implement the same Notifier contract so the intake
// usecase depends only on the abstraction.
package notify

import (
	"context"
	"net/http"
	"time"

	"deepindian-led-backend/internal/domain"
)

// Notifier delivers a single enquiry through one outbound channel
type Notifier interface {
	Deliver(ctx context.Context, enq domain.Enquiry) error
}

// relayResponse is the minimal success envelope both relays share
type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// kolkata localizes submission timestamps for the receiving dashboard.
// Falls back to a fixed IST offset when the tz database is unavailable.
var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

const (
	longDateLayout  = "Monday, 2 January 2006"
	clockLayout     = "3:04:05 pm"
	timestampLayout = "2/1/2006, 3:04:05 pm"
)

func orDefaultClient(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}

func orDefaultNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
