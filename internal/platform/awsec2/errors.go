package awsec2

import (
	"errors"
	"regexp"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/imageseal/imageseal/internal/util/retry"
)

// Provider error codes the adapter keys retry decisions on.
const (
	codeInstanceNotFound = "InvalidInstanceID.NotFound"
	codeVolumeNotFound   = "InvalidVolume.NotFound"
	codeSnapshotNotFound = "InvalidSnapshot.NotFound"
	codeImageNotFound    = "InvalidAMIID.NotFound"
	codeGroupNotFound    = "InvalidGroup.NotFound"
	codeSubnetNotFound   = "InvalidSubnetID.NotFound"
	codeVPCNotFound      = "InvalidVpcID.NotFound"
	codeKeyPairNotFound  = "InvalidKeyPair.NotFound"
	codeVolumeInUse      = "VolumeInUse"
)

// errorCode extracts the provider diagnostic code from an error chain.
// Non-API errors have no code and never match a pattern classifier.
func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// code builds a classifier matching the provider error code against an
// anchored regular expression. A code the pattern does not examine is
// non-retryable and surfaces immediately.
func code(pattern string) retry.Classifier {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return func(err error) bool {
		c := errorCode(err)
		return c != "" && re.MatchString(c)
	}
}

// notFound synthesizes the provider's own not-found condition for the
// case where the API erroneously answers a lookup with an empty list
// instead of an error. Carrying the genuine code keeps "doesn't exist"
// and "not found yet" indistinguishable to callers.
func notFound(code string) error {
	return &smithy.GenericAPIError{
		Code:    code,
		Message: "AWS API returned an empty response",
	}
}

// IsNotFound reports whether err is any of EC2's resource not-found
// conditions, synthesized or genuine.
func IsNotFound(err error) bool {
	return strings.HasSuffix(errorCode(err), ".NotFound")
}

// firstOrNotFound returns the first element of list, or the provider's
// not-found condition with the given code when the list is empty.
func firstOrNotFound[T any](list []T, code string) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, notFound(code)
	}
	return list[0], nil
}
