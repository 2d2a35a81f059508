package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ScanRecord is one scanned-barcode entry from the upstream feed. Fields
// are coerced at this boundary; nothing downstream touches raw JSON.
// Records carry no unique identifier and are never deduplicated.
type ScanRecord struct {
	Date       string   `json:"date"`
	Item       string   `json:"item"`
	Client     string   `json:"client"`
	Department string   `json:"department"`
	Qty        Quantity `json:"qty"`
	Barcode    string   `json:"barcode,omitempty"` // absent in older feed versions
}

// Quantity preserves the verbatim textual form of a qty value, which the
// feed sends as either a JSON number or a numeric string.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quantity(n.String())
	return nil
}

// Client fetches the scanner feed.
type Client struct {
	url    string
	client *http.Client
}

func New(feedURL string) *Client {
	return &Client{
		url: feedURL,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can intercept
// requests through a mocked default transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// Fetch performs a single GET and loads the whole feed into memory. Any
// transport error, non-200 status or malformed body is returned as an
// error; the caller decides whether that degrades to an empty day.
func (c *Client) Fetch() ([]ScanRecord, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed error %d: %s", resp.StatusCode, string(body))
	}

	var records []ScanRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	return records, nil
}
