package awsec2

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdkretry "github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
)

// throttleErrorCodes lists the request-throttling conditions the SDK
// client retries natively. Eventual-consistency codes are deliberately
// absent: those belong to this package's own per-operation policies, and
// letting the SDK retry them as well would double the effective bound.
var throttleErrorCodes = map[string]struct{}{
	"Throttling":                {},
	"ThrottlingException":       {},
	"RequestThrottledException": {},
	"RequestLimitExceeded":      {},
	"RequestThrottled":          {},
	"TooManyRequestsException":  {},
	"EC2ThrottledException":     {},
	"RequestTimeout":            {},
	"RequestTimeoutException":   {},
}

// throttleRetrier configures the EC2 client's built-in retryer to cover
// only throttling and request-timeout conditions.
func throttleRetrier() config.LoadOptionsFunc {
	return config.WithRetryer(func() aws.Retryer {
		return sdkretry.NewStandard(func(o *sdkretry.StandardOptions) {
			o.MaxAttempts = 5
			o.MaxBackoff = 3 * time.Second
			o.Retryables = []sdkretry.IsErrorRetryable{
				sdkretry.NoRetryCanceledError{},
				sdkretry.RetryableConnectionError{},
				sdkretry.RetryableErrorCode{Codes: throttleErrorCodes},
			}
		})
	})
}
