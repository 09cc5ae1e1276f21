package retry

import (
	"context"
	"errors"
	"time"
)

// DefaultInitialDelay is the backoff starting point used when a Policy
// does not set one. With the default attempt bound of five retries the
// total sleep time comes to 7.75s (0.25 + 0.5 + 1 + 2 + 4).
const DefaultInitialDelay = 250 * time.Millisecond

// Classifier reports whether an error represents a transient condition
// worth retrying. Classifiers must be pure decision functions.
type Classifier func(error) bool

// Any combines classifiers into one that retries when any member would.
func Any(classifiers ...Classifier) Classifier {
	return func(err error) bool {
		for _, c := range classifiers {
			if c(err) {
				return true
			}
		}
		return false
	}
}

// Kind returns a classifier that retries only errors whose chain contains
// the kind T, in the errors.As sense. Anything outside the allow-list is
// reported non-retryable so the engine re-raises it untouched.
func Kind[T error]() Classifier {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// Policy bounds a retried operation. One policy value is constructed per
// wrapped call site and never mutated afterwards.
//
// When Timeout is set the policy is time-bounded: no further attempt is
// committed to once the elapsed time since the first attempt, plus the
// pending sleep, would exceed it. The deadline is only checked between
// attempts; an attempt already in flight is never interrupted. When
// Timeout is zero the policy is attempt-bounded by MaxRetries, which
// counts retries after the initial attempt (MaxRetries of 5 means up to
// six calls).
type Policy struct {
	Retryable    Classifier
	MaxRetries   int
	Timeout      time.Duration
	InitialDelay time.Duration
}

// Do executes op until it succeeds, fails with a non-retryable error, or
// exhausts the policy's bound. The delay between attempts starts at the
// policy's initial delay and doubles after every failure.
//
// Whatever error op last returned is handed back unmodified; the engine
// never substitutes a bound-exhausted error of its own. A context
// cancelled during backoff likewise surfaces the last operation error,
// not the context's.
func Do(ctx context.Context, p Policy, op func() error) error {
	_, err := DoValue(ctx, p, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}

// DoValue is Do for operations that produce a result.
func DoValue[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	delay := p.InitialDelay
	if delay <= 0 {
		delay = DefaultInitialDelay
	}
	start := time.Now()
	retries := 0
	for {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return v, err
		}
		if p.Timeout > 0 {
			if time.Since(start)+delay > p.Timeout {
				return v, err
			}
		} else if retries >= p.MaxRetries {
			return v, err
		}
		select {
		case <-ctx.Done():
			return v, err
		case <-time.After(delay):
		}
		retries++
		delay *= 2
	}
}
