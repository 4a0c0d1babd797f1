// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const (
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultTimeout  = 20 * time.Second

	// maxBodySize caps how much of a response is read into memory.
	maxBodySize = 4 << 20
)

// Client fetches homework statuses from the Practicum API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	maxBody    int64
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		maxBody:    maxBodySize,
	}
}

// Fetch requests statuses changed since the given unix timestamp.
// It does not retry; the poll interval is the retry.
func (c *Client) Fetch(ctx context.Context, since int64) (homework.RawResponse, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.FetchError{Kind: homework.FetchTransport, Err: fmt.Errorf("parse endpoint: %w", err)}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(since, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &homework.FetchError{Kind: homework.FetchTransport, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the request URL; keep only the cause so that
		// consecutive failures produce the same text.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &homework.FetchError{Kind: homework.FetchTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))
		return nil, &homework.FetchError{Kind: homework.FetchBadStatus, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &homework.FetchError{Kind: homework.FetchTransport, Err: fmt.Errorf("read response: %w", err)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &homework.FetchError{Kind: homework.FetchDecode, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBody)}
	}
	if !json.Valid(body) {
		return nil, &homework.FetchError{Kind: homework.FetchDecode, Err: errors.New("malformed body")}
	}
	return homework.RawResponse(body), nil
}
