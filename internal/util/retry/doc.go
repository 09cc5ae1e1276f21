// Package retry provides a bounded exponential backoff retry loop for
// remote calls that fail transiently.
//
// A [Policy] binds a failure classifier to either an attempt bound or an
// elapsed-time budget. The engine only decides timing and looping: errors
// are returned to the caller exactly as the operation produced them, both
// when the classifier rejects them and when the bound is exhausted, so
// callers can still match on the original provider diagnostics.
package retry
