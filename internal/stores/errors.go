package stores

import (
	"fmt"

	"pageview-analytics/internal/shared/svcerrors"
)

// OutputStore errors
const (
	codeUnsupportedFormat = "OUT_1000"

	codeInternalPutFailed    = "OUT_9000"
	codeInternalEncodeFailed = "OUT_9001"
)

func errUnsupportedFormat(format TreeFormat) *svcerrors.ServiceError {
	return svcerrors.NewInvalidConfigError(codeUnsupportedFormat, fmt.Sprintf("unsupported tree format %q", format), nil)
}

// errInternalPutFailed returns an error when the file storage rejects a document.
func errInternalPutFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPutFailed, fmt.Errorf("putFailed %s: %w", key, cause))
}

// errInternalEncodeFailed returns an error when a shaped tree cannot be encoded.
func errInternalEncodeFailed(format TreeFormat, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEncodeFailed, fmt.Errorf("encodeFailed %s: %w", format, cause))
}
