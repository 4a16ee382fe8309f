package score

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"
)

// UserAgent identifies the game to the score server and seeds the save token
const UserAgent = "racer796/1.0"

// Client reads and writes the remote score table
// Every failure is logged and swallowed: List returns nil, Save does nothing
type Client struct {
	baseURL string
	http    *http.Client

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 796)),
	}
}

// List fetches the ranked results
func (c *Client) List(ctx context.Context) []Record {
	records, err := c.list(ctx)
	if err != nil {
		log.Printf("score: list failed: %v", err)
		return nil
	}
	return records
}

func (c *Client) list(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/results", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	var records []Record
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	slices.SortStableFunc(records, rankOrder)
	return records, nil
}

// Save submits a result
func (c *Client) Save(ctx context.Context, name string, score int) {
	if err := c.save(ctx, name, score); err != nil {
		log.Printf("score: save failed: %v", err)
	}
}

func (c *Client) save(ctx context.Context, name string, score int) error {
	c.mu.Lock()
	key, token := Encode(c.rng, score, UserAgent)
	c.mu.Unlock()

	form := url.Values{
		"name":  {CleanName(name)},
		"key":   {key},
		"token": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/save", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", UserAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	var ack SaveResponse
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return fmt.Errorf("decode save response: %w", err)
	}
	return nil
}
