// Package validate enforces EC2's syntactic constraints on image names
// and tag keys/values before any request leaves the process.
//
// Each function returns its input unchanged on success and a [*Error] on
// violation. This is a deliberate client-side pre-check: the provider
// would reject the same input eventually, but only after a network round
// trip and with a less readable diagnostic.
package validate
