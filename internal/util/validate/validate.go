package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Tag keys and values share the reserved prefix rule; the length bounds
// differ.
const (
	reservedTagPrefix = "aws:"
	maxTagKeyLen      = 127
	maxTagValueLen    = 255

	minImageNameLen = 3
	maxImageNameLen = 128
)

var imageNamePattern = regexp.MustCompile(`^[A-Za-z0-9()\[\] ./\-'@_]+$`)

// Error reports a client-side validation failure. It is distinct from any
// provider error type so callers can tell "rejected before sending" apart
// from "rejected by AWS".
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func errorf(format string, args ...any) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// ImageName verifies that name is a valid EC2 image name and returns it
// unchanged.
func ImageName(name string) (string, error) {
	if len(name) < minImageNameLen || len(name) > maxImageNameLen {
		return "", errorf("image name must be between %d and %d characters long",
			minImageNameLen, maxImageNameLen)
	}
	if !imageNamePattern.MatchString(name) {
		return "", errorf("image name may only contain letters, numbers, spaces, " +
			"and the following characters: ()[]./-'@_")
	}
	return name, nil
}

// TagKey verifies that key is a valid EC2 tag key and returns it unchanged.
func TagKey(key string) (string, error) {
	if len(key) > maxTagKeyLen {
		return "", errorf("tag key cannot be longer than %d characters", maxTagKeyLen)
	}
	if strings.HasPrefix(key, reservedTagPrefix) {
		return "", errorf("tag key cannot start with %q", reservedTagPrefix)
	}
	return key, nil
}

// TagValue verifies that value is a valid EC2 tag value and returns it
// unchanged.
func TagValue(value string) (string, error) {
	if len(value) > maxTagValueLen {
		return "", errorf("tag value cannot be longer than %d characters", maxTagValueLen)
	}
	if strings.HasPrefix(value, reservedTagPrefix) {
		return "", errorf("tag value cannot start with %q", reservedTagPrefix)
	}
	return value, nil
}
