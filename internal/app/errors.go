package app

import (
	"fmt"

	"pageview-analytics/internal/shared/svcerrors"
)

// App errors
const (
	codeInputUnavailable = "APP_1000"
	codeInvalidFilter    = "APP_1001"

	codeInternalOutputFailed = "APP_9000"
)

// errInputUnavailable returns an error when the export cannot be opened.
func errInputUnavailable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeInputUnavailable, fmt.Sprintf("cannot open %s", path), cause)
}

// errInvalidFilter returns an error when the URL filter does not compile.
func errInvalidFilter(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidConfigError(codeInvalidFilter, "invalid search pattern", cause)
}

// errInternalOutputFailed returns an error when the result cannot be written to stdout.
func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputFailed, fmt.Errorf("outputFailed: %w", cause))
}
