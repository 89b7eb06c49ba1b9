package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// Client is a minimal Tavily search client.
type Client struct {
	BaseURL string
	APIKey  string
	Http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Result is one search hit. Raw keeps the full provider payload for storage
// in research_sources.data.
type Result struct {
	Title   string                 `json:"title"`
	Url     string                 `json:"url"`
	Content string                 `json:"content"`
	Raw     map[string]interface{} `json:"-"`
}

// Response is a search outcome plus the raw JSON body for context inlining.
type Response struct {
	Results []Result
	RawJSON string
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"`
	MaxResults  int    `json:"max_results,omitempty"`
}

// Search runs an advanced-depth search capped at maxResults.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (*Response, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:      c.APIKey,
		Query:       query,
		SearchDepth: "advanced",
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/search", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	out := &Response{RawJSON: string(bodyBytes)}
	for _, raw := range parsed.Results {
		r := Result{Raw: raw}
		if v, ok := raw["title"].(string); ok {
			r.Title = v
		}
		if v, ok := raw["url"].(string); ok {
			r.Url = v
		}
		if v, ok := raw["content"].(string); ok {
			r.Content = v
		} else if v, ok := raw["snippet"].(string); ok {
			r.Content = v
		}
		out.Results = append(out.Results, r)
	}
	return out, nil
}
