package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerInvalidAmount       ErrorCode = "LEDGER_001"
	LedgerIndexOutOfRange     ErrorCode = "LEDGER_002"
	LedgerEmpty               ErrorCode = "LEDGER_003"
	LedgerTransactionNotFound ErrorCode = "LEDGER_004"
	LedgerInvalidIndex        ErrorCode = "LEDGER_005"
)

// Export error codes (EXPORT_*)
const (
	ExportIOError        ErrorCode = "EXPORT_001"
	ExportPathNotAllowed ErrorCode = "EXPORT_002"
	ExportBatchNotFound  ErrorCode = "EXPORT_003"
	ExportUnavailable    ErrorCode = "EXPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Ledger errors
	LedgerInvalidAmount:       "Amount must be a number.",
	LedgerIndexOutOfRange:     "No entry at this index.",
	LedgerEmpty:               "No expenses recorded yet!",
	LedgerTransactionNotFound: "Transaction not found",
	LedgerInvalidIndex:        "Enter a valid index.",

	// Export errors
	ExportIOError:        "Export destination is not writable",
	ExportPathNotAllowed: "Export path must stay inside the export directory",
	ExportBatchNotFound:  "Export batch not found",
	ExportUnavailable:    "Database export is unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
