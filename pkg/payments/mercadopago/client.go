package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.mercadopago.com"

// Client creates checkout preferences. Each call carries the store's own
// access token, so the client itself holds no credentials.
type Client struct {
	BaseURL string
	Http    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type PreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyId string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferenceRequest struct {
	Items             []PreferenceItem       `json:"items"`
	BackURLs          *BackURLs              `json:"back_urls,omitempty"`
	AutoReturn        string                 `json:"auto_return,omitempty"`
	ExternalReference string                 `json:"external_reference,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

type Preference struct {
	Id               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// CreatePreference registers a checkout preference under the given access
// token and returns the redirect URL data.
func (c *Client) CreatePreference(ctx context.Context, accessToken string, pref *PreferenceRequest) (*Preference, error) {
	payloadBytes, err := json.Marshal(pref)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/checkout/preferences", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("mercadopago error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var preference Preference
	if err := json.Unmarshal(bodyBytes, &preference); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if preference.InitPoint == "" {
		return nil, fmt.Errorf("mercadopago returned no init_point")
	}
	return &preference, nil
}
