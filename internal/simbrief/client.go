package simbrief

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is SimBrief's OFP fetcher endpoint.
const DefaultBaseURL = "https://www.simbrief.com/api/xml.fetcher.php"

// Client fetches the latest generated OFP for a SimBrief username.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client against the public SimBrief API with a 10 s
// request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchOFP downloads the latest OFP for username as JSON. SimBrief wraps
// the document under an "ofp" key on some plan formats; both shapes are
// accepted.
func (c *Client) FetchOFP(ctx context.Context, username string) (*OFP, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("simbrief: empty username")
	}

	q := url.Values{}
	q.Set("username", username)
	q.Set("json", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("simbrief: building request: %w", err)
	}

	log.WithField("username", username).Debug("fetching SimBrief OFP")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("simbrief: contacting SimBrief: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("simbrief: SimBrief returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("simbrief: reading response: %w", err)
	}
	return DecodeOFP(body)
}

// DecodeOFP parses an OFP JSON document, unwrapping the optional "ofp"
// envelope.
func DecodeOFP(data []byte) (*OFP, error) {
	var envelope struct {
		OFP *OFP `json:"ofp"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.OFP != nil {
		return envelope.OFP, nil
	}

	var ofp OFP
	if err := json.Unmarshal(data, &ofp); err != nil {
		return nil, fmt.Errorf("simbrief: SimBrief did not return valid JSON: %w", err)
	}
	return &ofp, nil
}
