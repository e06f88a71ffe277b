package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"teamboard/internal/dashboard/repository"
)

const maxErrorBody = 512

// do performs one request against the tracker REST API. A nil out skips
// body decoding, which also tolerates 204 responses on mutations.
func (r *implRepository) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.email != "" {
		req.SetBasicAuth(r.email, r.apiToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call tracker: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return repository.ErrIssueNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(snippet))
		r.l.Warnf(ctx, "tracker returned %d for %s %s: %s", resp.StatusCode, method, path, msg)
		if msg == "" {
			return fmt.Errorf("%w: status %d", repository.ErrUpstream, resp.StatusCode)
		}
		// The body carries the tracker's rejection reason; callers surface it.
		return fmt.Errorf("%w: status %d: %s", repository.ErrUpstream, resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "application/json") {
		return fmt.Errorf("%w: content type %q", repository.ErrUpstream, ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tracker response: %w", err)
	}
	return nil
}
