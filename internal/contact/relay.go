// Package contact submits general inquiries to the Web3Forms relay. The
// relay is fire-and-forget from the storefront's perspective: a failed
// submission is reported once and the user retries manually.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"doceencanto/internal/models"
)

// DefaultEndpoint is the Web3Forms submission URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// saoPaulo stamps submissions in the shop's timezone.
var saoPaulo = loadSaoPaulo()

func loadSaoPaulo() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// Client submits contact-form inquiries to the relay.
type Client struct {
	Endpoint   string
	AccessKey  string
	HTTPClient *http.Client

	// now is swapped by tests to pin the timestamp.
	now func() time.Time
}

// NewClient creates a relay client with the given access key.
func NewClient(accessKey string) *Client {
	return &Client{
		Endpoint:   DefaultEndpoint,
		AccessKey:  accessKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

type submission struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit posts the form to the relay. Any transport, decode or relay-side
// failure comes back as a single error; the caller surfaces it as one
// retryable notification.
func (c *Client) Submit(ctx context.Context, form models.ContactForm) error {
	body, err := json.Marshal(submission{
		AccessKey: c.AccessKey,
		Subject:   fmt.Sprintf("Novo contato de %s - Doce Encanto", form.Name),
		FromName:  form.Name,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		Timestamp: c.timestamp(),
	})
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send submission: %w", err)
	}
	defer resp.Body.Close()

	var decoded relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode relay response: %w", err)
	}
	if !decoded.Success {
		return fmt.Errorf("relay rejected submission: %s", decoded.Message)
	}
	return nil
}

func (c *Client) timestamp() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return now().In(saoPaulo).Format("02/01/2006, 15:04:05")
}
