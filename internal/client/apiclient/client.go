// Package apiclient is the terminal client's HTTP transport to the diary
// REST API. Every error it returns carries a failure code (CodeValidation,
// CodeNotFound or CodeTransport) and a user-facing message.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/morikuni/failure"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. Every request is bounded by
// timeout; no request is retried.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) List(ctx context.Context) ([]models.Entry, error) {
	var out []models.Entry
	if err := c.do(ctx, http.MethodGet, common.EntriesPath, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Entry{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (*models.Entry, error) {
	var out models.Entry
	if err := c.do(ctx, http.MethodGet, entryPath(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	var out models.Entry
	if err := c.do(ctx, http.MethodPost, common.EntriesPath, in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id string, patch models.EntryPatch) (*models.Entry, error) {
	var out models.Entry
	if err := c.do(ctx, http.MethodPatch, entryPath(id), patch, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, entryPath(id), nil, http.StatusNoContent, nil)
}

func entryPath(id string) string {
	return common.EntriesPath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return failure.MarkUnexpected(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return failure.Translate(err, CodeTransport, failure.Message(MsgUnreachable))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err, method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err, method, path)
	}

	if resp.StatusCode != want {
		return statusError(resp.StatusCode, data, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return failure.Translate(err, CodeTransport,
			failure.Message("Unexpected response from the server."),
			failure.Context{"method": method, "path": path})
	}
	return nil
}

func transportError(err error, method, path string) error {
	ctx := failure.Context{"method": method, "path": path}

	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return failure.Translate(err, CodeTransport, failure.Message(MsgTimeout), ctx)
	}
	return failure.Translate(err, CodeTransport, failure.Message(MsgUnreachable), ctx)
}

func statusError(status int, body []byte, method, path string) error {
	code := CodeTransport
	switch status {
	case http.StatusBadRequest:
		code = CodeValidation
	case http.StatusNotFound:
		code = CodeNotFound
	}
	return failure.New(code,
		failure.Message(errorMessage(body)),
		failure.Context{"method": method, "path": path, "status": fmt.Sprint(status)},
	)
}
