package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain
// consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Transcoder error messages
	ErrMsgParseFailed    = "Failed to parse menu configuration"
	ErrMsgGenerateFailed = "Failed to generate menu configuration"

	// Document error messages
	ErrMsgInvalidDocumentID   = "Invalid document ID"
	ErrMsgCreateDocumentFail  = "Failed to create document"
	ErrMsgUpdateDocumentFail  = "Failed to update document"
	ErrMsgExportDocumentFail  = "Failed to export document"
	ErrMsgDocumentNotFoundMsg = "Document not found"

	// Catalog error messages
	ErrMsgGetMaterialsFailed = "Failed to retrieve materials"
)

// User-facing messages for mapped service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgEmptyConfigError    = "Configuration is empty"
	ErrMsgParseConfigError    = "Configuration could not be parsed"
	ErrMsgVersionUnknownError = "Unknown game version"
	ErrMsgInvalidInputError   = "Invalid input. Please check your request."
)
