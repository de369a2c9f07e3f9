package ingestors

import (
	"fmt"

	"pageview-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeInvalidCSV    = "ING_1000"
	codeMissingColumn = "ING_1001"
	codeInvalidNumber = "ING_1002"

	codeInternalIngestionAborted = "ING_9000"
)

// errInvalidCSV returns an error when the export is not well-formed CSV.
func errInvalidCSV(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeInvalidCSV, msg, cause)
}

// errMissingColumn returns an error when a required column is absent from the header.
func errMissingColumn(column string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeMissingColumn, fmt.Sprintf("missing required column %q", column), nil)
}

// errInvalidNumber returns an error when a numeric cell cannot be parsed.
func errInvalidNumber(line int, column string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeInvalidNumber, fmt.Sprintf("line %d: invalid %s", line, column), cause)
}

// errInternalIngestionAborted returns an error when ingestion stops before the end of the input.
func errInternalIngestionAborted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalIngestionAborted, fmt.Errorf("ingestionAborted: %w", cause))
}
