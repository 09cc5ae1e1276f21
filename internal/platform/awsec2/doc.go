// Package awsec2 implements the cloud.ResourceManager contract against
// the AWS EC2 API.
//
// # Architecture
//
//   - service.go: Service construction, region binding, cross-account
//     assume-role connect
//   - api.go: the slice of the EC2 client the adapter consumes
//   - errors.go: error-code extraction and retry classifiers
//   - retrier.go: SDK-level retryer restricted to throttling conditions
//   - instances.go, volumes.go, snapshots.go, images.go,
//     securitygroups.go, networks.go, tags.go: per-family operations
//
// # Retry behavior
//
// EC2 is eventually consistent: a resource returned by a creation call
// may not be visible to a describe call issued immediately afterwards,
// and deletes can race with the resource still being in use. Operations
// known to exhibit these races are wrapped with a retry policy keyed to
// the exact provider error codes involved; everything else passes
// straight through. Errors outside a policy's code pattern are returned
// to the caller untouched, with the provider diagnostic code intact.
//
// Lookups that EC2 answers with an empty collection instead of an error
// are normalized: the adapter synthesizes the same not-found code a
// genuine provider error would carry, so callers cannot distinguish
// "does not exist" from "not visible yet".
package awsec2
