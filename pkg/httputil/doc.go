// Package httputil provides HTTP utilities for API clients.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient
// failures: network errors, 5xx server errors, and 429 rate limit
// responses. Wrap such failures in [RetryableError] so Retry knows
// to attempt the operation again; other errors return immediately.
//
// It uses exponential backoff, doubling the delay after each failed
// attempt:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return handle(resp)
//	})
//
// # Configuration
//
// Default settings via [RetryWithBackoff] are suitable for most use
// cases: 3 attempts with a 1 second base delay.
package httputil
