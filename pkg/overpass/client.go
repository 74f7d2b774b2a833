// This file is part of poifetch (https://github.com/riskatlas/poifetch).
// Copyright (C) 2025 the poifetch authors (https://github.com/riskatlas).
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, version 3 of the License.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package overpass

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskatlas/poifetch/pkg/geo"
)

// DefaultEndpoint is the public Overpass interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// Default client-side wait budgets per attempt and the default retry budget
// for single-category fetches.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultBatchTimeout = 90 * time.Second
	DefaultMaxAttempts  = 3
)

const remoteErrorBodyLimit = 2048

// Client talks to an Overpass interpreter. It issues one blocking request at
// a time and sleeps between retries, so run it off any interactive loop and
// do not share one instance across concurrent fetches. The Client never logs;
// callers decide what to report.
type Client struct {
	Endpoint string

	// HTTPClient serves single-category fetches, BatchClient the batch path
	// with its longer wait budget.
	HTTPClient  *http.Client
	BatchClient *http.Client

	sleep func(time.Duration)
}

// NewClient returns a ready-to-use Client for the public endpoint.
// Non-positive timeouts fall back to the defaults.
func NewClient(timeout, batchTimeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}
	return &Client{
		Endpoint:    DefaultEndpoint,
		HTTPClient:  &http.Client{Timeout: timeout},
		BatchClient: &http.Client{Timeout: batchTimeout},
		sleep:       time.Sleep,
	}
}

// Fetch downloads one category within bbox, retrying transient failures up to
// maxAttempts in total. Client-side timeouts, HTTP 504 and HTTP 429 retry on
// the TimeoutBackoff, GatewayBackoff and RateLimitBackoff schedules; other
// HTTP errors, connection failures and undecodable bodies fail immediately.
// Once attempts run out the error kind of the last failure is returned.
func (c *Client) Fetch(bbox geo.BoundingBox, category string, maxAttempts int) (*Response, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	query := BuildQuery(bbox, category)

	for attempt := 1; ; attempt++ {
		resp, backoff, err := c.do(c.HTTPClient, query)
		if err == nil {
			return resp, nil
		}
		if backoff == nil || attempt >= maxAttempts {
			return nil, err
		}
		c.sleep(backoff(attempt))
	}
}

// FetchBatch downloads several categories in one query. Unlike Fetch it makes
// exactly one attempt: the combined query gets a longer wait budget instead
// of a retry loop, so every failure surfaces immediately with its error kind.
func (c *Client) FetchBatch(bbox geo.BoundingBox, categories []string) (*Response, error) {
	query := BuildBatchQuery(bbox, categories)
	resp, _, err := c.do(c.BatchClient, query)
	return resp, err
}

// do posts one query and classifies the outcome. A non-nil backoff means the
// failure is transient and worth retrying on that schedule.
func (c *Client) do(hc *http.Client, query string) (*Response, BackoffSchedule, error) {
	body := strings.NewReader("data=" + url.QueryEscape(query))
	resp, err := hc.Post(c.Endpoint, "application/x-www-form-urlencoded", body)
	if err != nil {
		if isTimeout(err) {
			return nil, TimeoutBackoff, ErrTimeout
		}
		return nil, nil, ErrConnectionUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGatewayTimeout:
		return nil, GatewayBackoff, ErrUpstreamOverloaded
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, RateLimitBackoff, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, nil, &RemoteError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, ErrMalformedResponse
	}
	return &out, nil, nil
}

func readErrorMessage(resp *http.Response) string {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, remoteErrorBodyLimit))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// isTimeout tells client-side timeouts apart from connection failures; both
// come out of the http client as *url.Error.
func isTimeout(err error) bool {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Timeout()
	}
	return false
}
