package query

import (
	"errors"
	"fmt"
	"time"
)

// ConfigError reports an invalid option combination or an invalid container
// reference. It is always raised synchronously, before any matching runs, and
// is never retried by the asynchronous variants.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that a required query matched nothing. It carries the
// family-specific missing message and a diagnostic snapshot of the container;
// there is no suggestion attached since nothing matched.
type NotFoundError struct {
	Message  string
	Snapshot string
}

func (e *NotFoundError) Error() string {
	return withSnapshot(e.Message, e.Snapshot)
}

// MultipleMatchedError reports that a single-result query matched more than
// one node. It is always fatal to that call; the engine never resolves it by
// picking the first match.
type MultipleMatchedError struct {
	Message  string
	Count    int
	Snapshot string
}

func (e *MultipleMatchedError) Error() string {
	return withSnapshot(e.Message, e.Snapshot)
}

// TimeoutError reports that an asynchronous query's deadline elapsed. It
// wraps the error the synchronous form produced on the final poll, including
// that poll's snapshot of the document.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("query: timed out after %s: %s", e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// SuggestionError reports that a query succeeded through a discouraged family
// while a preferred one was available. Only produced when
// Config.ThrowSuggestions is enabled; the matched result is still returned
// alongside it.
type SuggestionError struct {
	// Used is the method the caller invoked, e.g. "GetByTestId".
	Used string
	// Expression is the rendered preferred query.
	Expression string
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("query: a better query is available than %s, try %s", e.Used, e.Expression)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsMultipleMatched reports whether err is, or wraps, a MultipleMatchedError.
func IsMultipleMatched(err error) bool {
	var target *MultipleMatchedError
	return errors.As(err, &target)
}

// retryable reports whether the asynchronous variants should keep polling
// after observing err. Configuration errors fail fast.
func retryable(err error) bool {
	return IsNotFound(err) || IsMultipleMatched(err)
}

func withSnapshot(message, snapshot string) string {
	if snapshot == "" {
		return message
	}
	return message + "\n\n" + snapshot
}
