package matchhub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const contentType = "application/json"

// apiMessage is the body shape the backend uses for rejections.
type apiMessage struct {
	Msg string `json:"msg"`
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+path, nil)
	if err != nil {
		return wrapTransport(err)
	}

	return c.do(req, target)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return wrapTransport(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return wrapTransport(err)
	}

	return c.do(req, target)
}

// do is the single chokepoint for backend I/O. No call path may bypass it:
// it attaches the current credential, performs the exchange and normalizes
// the outcome. It never retries.
func (c *Client) do(req *http.Request, target any) error {
	c.setHeaders(req)

	c.logger.Debug("make request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get(requestIDHeader)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return wrapTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapTransport(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp.StatusCode, backendMessage(data))
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, cause: err}
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(requestIDHeader, uuid.NewString())

	// Anonymous calls omit the credential header entirely.
	if token := c.token(); token != "" {
		req.Header.Set(authHeader, token)
	}
}

func backendMessage(data []byte) string {
	var msg apiMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ""
	}
	return msg.Msg
}
