package userdata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// RESTRepository implements Repository against a generic REST collection
// (one JSON document per user, queryable by username).
//
// Fetching is retried with backoff because without a record there is no
// session at all. Saving is deliberately not retried: the in-memory state is
// the source of truth for the session and a failed save only leaves the
// remote copy stale until the next one.
type RESTRepository struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewRESTRepository creates a repository for the collection at baseURL,
// e.g. https://example.mockapi.io/word_users.
func NewRESTRepository(baseURL string, retryAttempts uint) *RESTRepository {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetHeader("Content-Type", "application/json")

	return &RESTRepository{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (r *RESTRepository) Close() error {
	return r.httpClient.Close()
}

// isRetryableError determines if a fetch error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// FetchByUsername looks up the user's record, retrying transient failures.
func (r *RESTRepository) FetchByUsername(ctx context.Context, username string) (*Record, error) {
	var result *Record
	if err := retry.Do(
		func() error {
			record, err := r.fetchByUsername(ctx, username)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = record
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.maxRetryAttempts+1),
		// Callers match sentinel errors such as ErrUserNotFound.
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *RESTRepository) fetchByUsername(ctx context.Context, username string) (*Record, error) {
	response, err := r.httpClient.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		SetResult(&[]Record{}).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	records := response.Result().(*[]Record)
	if records == nil || len(*records) == 0 {
		return nil, ErrUserNotFound
	}
	return &(*records)[0], nil
}

// saveRequest is the document body for a full rewrite.
type saveRequest struct {
	Words []wordbook.Word       `json:"word_list"`
	Wrong []wordbook.WrongEntry `json:"Wrong_list"`
}

// Save rewrites the user's whole document. Failures are returned to the
// caller, never retried.
func (r *RESTRepository) Save(ctx context.Context, id string, words []wordbook.Word, wrong []wordbook.WrongEntry) error {
	// Empty lists must serialize as [] rather than null.
	if words == nil {
		words = []wordbook.Word{}
	}
	if wrong == nil {
		wrong = []wordbook.WrongEntry{}
	}

	response, err := r.httpClient.R().
		SetContext(ctx).
		SetBody(saveRequest{Words: words, Wrong: wrong}).
		Put("/" + id)
	if err != nil {
		return fmt.Errorf("httpClient.Put > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}
