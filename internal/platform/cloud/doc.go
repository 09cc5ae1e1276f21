// Package cloud declares the provider-neutral resource management
// contract the image encryption workflow programs against.
//
// The contract is split into per-resource-family interfaces (instances,
// volumes, snapshots, images, security groups, network lookups, tagging)
// that combine into [ResourceManager]. Workflow code depends only on
// these interfaces, so a second provider can be added by writing one new
// adapter without touching callers.
//
// Every "get single resource" operation fails with the provider's
// not-found condition when the resource does not exist. Adapters uphold
// this even where the underlying API reports absence as an empty
// collection instead of an error.
package cloud
