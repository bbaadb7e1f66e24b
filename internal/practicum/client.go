package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	logx "hwbot/pkg/logx"
)

// Responses are tiny (a handful of records); anything near this cap is bogus.
const maxResponseBytes = 1 << 20

type ClientConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// Client fetches review statuses newer than a given watermark.
// Safe for concurrent use (it holds no per-poll state).
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      logx.Logger
}

func NewClient(cfg ClientConfig, log logx.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("practicum token is empty")
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("practicum endpoint is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		token:    cfg.Token,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}, nil
}

// Fetch asks the API for everything after the given watermark. It returns the
// decoded but unvalidated payload; run CheckResponse on the result.
func (c *Client) Fetch(ctx context.Context, from int64) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBytes))
		return nil, &RequestError{Status: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ShapeError{Reason: "undecodable body", Err: err}
	}

	c.log.Debug("poll response received",
		logx.Int64("from_date", from),
		logx.Int("bytes", len(body)),
	)
	return resp, nil
}
