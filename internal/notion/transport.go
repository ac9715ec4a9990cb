package notion

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	requestTimeout = 30 * time.Second
	maxAttempts    = 3
	backoffBase    = time.Second
)

// newRetryClient builds the retrying HTTP client every Notion call goes
// through: up to maxAttempts tries with a linear backoffBase×attempt wait
// between them. Any transport error or non-success status triggers a retry;
// exhausting the attempts yields a terminal error naming the endpoint.
func newRetryClient(log *slog.Logger, base http.RoundTripper) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: requestTimeout, Transport: base}
	rc.RetryMax = maxAttempts - 1
	rc.RetryWaitMin = backoffBase
	rc.RetryWaitMax = backoffBase * maxAttempts
	rc.Logger = retryLogger{log: log}
	rc.Backoff = linearBackoff
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, nil
		}
		return resp.StatusCode >= 400, nil
	}
	rc.ErrorHandler = func(resp *http.Response, err error, attempts int) (*http.Response, error) {
		if resp != nil {
			endpoint := resp.Request.URL.String()
			status := resp.StatusCode
			_ = resp.Body.Close()
			return nil, errors.Newf("%s returned HTTP %d, giving up after %d attempts", endpoint, status, attempts)
		}
		return nil, errors.Wrapf(err, "giving up after %d attempts", attempts)
	}
	return rc
}

func newHTTPClient(log *slog.Logger, base http.RoundTripper) *http.Client {
	return newRetryClient(log, base).StandardClient()
}

func linearBackoff(min, _ time.Duration, attempt int, _ *http.Response) time.Duration {
	return min * time.Duration(attempt+1)
}

// retryLogger adapts slog to retryablehttp's leveled logger. Per-attempt
// failures are retried, so they surface as warnings rather than errors.
type retryLogger struct {
	log *slog.Logger
}

func (l retryLogger) Error(msg string, kv ...any) { l.log.Warn(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...any)  { l.log.Warn(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...any)  { l.log.Debug(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...any) { l.log.Debug(msg, kv...) }
