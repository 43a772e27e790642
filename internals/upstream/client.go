package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenSource menyuplai bearer token per-request. Token milik request
// (dibaca dari cookie), bukan state global aplikasi.
type TokenSource interface {
	Token() string
}

// StaticToken: TokenSource untuk satu nilai token.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client adalah satu-satunya pintu keluar ke backend Qila. JSON masuk
// dan keluar, Authorization: Bearer <token> dipasang bila token ada.
type Client struct {
	base  string
	http  *http.Client
	token TokenSource
	log   *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		log:  logger,
	}
}

// WithToken mengembalikan salinan client yang memakai token tersebut.
// Client asal tidak berubah, jadi aman dipakai lintas request.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	if token != "" {
		cp.token = StaticToken(token)
	}
	return &cp
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if t := c.token.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request gagal", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.log.Debug("request selesai",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("dur", time.Since(start)))

	if res.StatusCode >= 400 {
		return c.asError(res)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode %s %s: %w", method, path, err)
	}
	return nil
}

// asError memetakan status non-2xx ke taksonomi error client.
func (c *Client) asError(res *http.Response) error {
	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(res.Body).Decode(&payload)

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		if len(payload.Errors) > 0 {
			return &FieldErrors{Code: res.StatusCode, Fields: payload.Errors}
		}
	}
	return &StatusError{Code: res.StatusCode, Message: payload.Message}
}
