package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldBytes = "bytes"
	FieldRows  = "rows"

	// Editor fields.
	FieldSyntax = "syntax"
	FieldQuery  = "query"
	FieldRow    = "row"
	FieldCol    = "col"
	FieldDirty  = "dirty"

	// Configuration fields.
	FieldConfigFile = "config_file"
	FieldLevel      = "level"
	FieldStore      = "store"

	// Version fields.
	FieldVersion = "version"
)
