// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const defaultTimeout = 10 * time.Second

// ErrUnauthenticated signals a 401 from the API: either no token was
// configured or the server rejected the one we sent.
var ErrUnauthenticated = errors.New("not authenticated (token missing, expired or rejected)")

// Client talks to a Taiga REST API. All endpoints return JSON; a bearer
// token is attached to every request when one is configured. The empty
// token is valid and yields an anonymous client, which is all that the
// login call needs.
type Client struct {
	baseURL  string
	client   *http.Client
	log      logrus.FieldLogger
	lock     sync.Mutex
	requests map[string]int
}

func NewClient(ctx context.Context, log logrus.FieldLogger, baseURL string, token string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	httpClient := &http.Client{}

	if token != "" {
		src := oauth2.StaticTokenSource(
			&oauth2.Token{
				AccessToken: token,
			},
		)
		httpClient = oauth2.NewClient(ctx, src)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL:  baseURL,
		client:   httpClient,
		log:      log,
		requests: map[string]int{},
	}, nil
}

// GetRequestCounts returns the number of requests issued so far, keyed
// by endpoint path.
func (c *Client) GetRequestCounts() map[string]int {
	c.lock.Lock()
	defer c.lock.Unlock()

	counts := make(map[string]int, len(c.requests))
	for path, count := range c.requests {
		counts[path] = count
	}

	return counts
}

func (c *Client) countRequest(path string) {
	// collapse per-resource paths so the counter keys (and the metric
	// labels fed from them) stay low-cardinality
	if idx := strings.LastIndexByte(path, '/'); idx > 0 {
		if _, err := strconv.Atoi(path[idx+1:]); err == nil {
			path = path[:idx]
		}
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.requests[path]++
}

type apiError struct {
	Status  int
	Detail  string `json:"detail"`
	Message string `json:"_error_message"`
	Code    string `json:"_error_type"`
}

func (e *apiError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("API responded with status %d: %s", e.Status, e.Message)
	case e.Detail != "":
		return fmt.Sprintf("API responded with status %d: %s", e.Status, e.Detail)
	default:
		return fmt.Sprintf("API responded with status %d", e.Status)
	}
}

// do performs a single JSON request. A non-nil out is decoded from the
// response body; a 401 maps onto ErrUnauthenticated so callers can
// distinguish "log in again" from everything else.
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = strings.NewReader(string(payload))
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.countRequest(path)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthenticated
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &apiError{Status: resp.StatusCode}

	// a decode failure here is fine, the status code alone is enough
	_ = json.NewDecoder(resp.Body).Decode(apiErr)

	return apiErr
}
