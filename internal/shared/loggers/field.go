package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldInput     = "input"
	FieldURL       = "url"
	FieldRow       = "row"
	FieldOutcome   = "outcome"
	FieldSortField = "sort_field"
	FieldOutputKey = "output_key"
)
