package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

// HTTPDirectory implements Directory over plain net/http with JSON bodies.
//
// Reads (List, Get) retry transient failures with exponential backoff. Writes
// are issued exactly once: a retried create could double-apply on a backend
// without idempotency keys.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client

	// retry policy for the read path
	retryBase    time.Duration
	retryAttempt uint64
}

// NewHTTPDirectory returns a directory client for the given base URL,
// e.g. "https://jsonplaceholder.typicode.com".
func NewHTTPDirectory(baseURL string, timeout time.Duration) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		retryBase:    200 * time.Millisecond,
		retryAttempt: 3,
	}
}

func (d *HTTPDirectory) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// doRead wraps do with the read retry policy. A 4xx status is terminal;
// 5xx and transport errors are retried.
func (d *HTTPDirectory) doRead(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(d.retryAttempt, retry.NewExponential(d.retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := d.do(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		var se *StatusError
		if errors.As(err, &se) && se.Code < 500 {
			return err
		}
		return retry.RetryableError(err)
	})
}

func (d *HTTPDirectory) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := d.doRead(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (d *HTTPDirectory) Get(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := d.doRead(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	return &user, nil
}

func (d *HTTPDirectory) Create(ctx context.Context, form models.UserForm) (*models.User, error) {
	var user models.User
	if err := d.do(ctx, http.MethodPost, "/users", form, &user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

func (d *HTTPDirectory) Update(ctx context.Context, id int, form models.UserForm) (*models.User, error) {
	var user models.User
	if err := d.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), form, &user); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	return &user, nil
}

func (d *HTTPDirectory) Delete(ctx context.Context, id int) error {
	if err := d.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}
