package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidCategory  ErrorCode = "TRANSACTION_003"
	TransactionInvalidPayment   ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
	TransactionImportFailed     ErrorCode = "TRANSACTION_006"
)

// Period error codes (PERIOD_*)
const (
	PeriodInvalidKind          ErrorCode = "PERIOD_001"
	PeriodInvalidConfiguration ErrorCode = "PERIOD_002"
	PeriodInvalidCount         ErrorCode = "PERIOD_003"
)

// Settings error codes (SETTINGS_*)
const (
	SettingsNotFound        ErrorCode = "SETTINGS_001"
	SettingsInvalidBoundary ErrorCode = "SETTINGS_002"
	SettingsInvalidCategory ErrorCode = "SETTINGS_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationOutOfRange:    "A field value is out of range",
	ValidationInvalidDate:   "Invalid date format",
	ValidationInvalidAmount: "Invalid amount format",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must be positive",
	TransactionInvalidCategory:  "Unknown transaction category",
	TransactionInvalidPayment:   "Unknown payment method",
	TransactionValidationFailed: "Transaction validation failed",
	TransactionImportFailed:     "Transaction import failed",

	// Period errors
	PeriodInvalidKind:          "Period must be daily, weekly or monthly",
	PeriodInvalidConfiguration: "Period boundary configuration is out of range",
	PeriodInvalidCount:         "Period count must be a positive integer",

	// Settings errors
	SettingsNotFound:        "Settings not found",
	SettingsInvalidBoundary: "Boundary settings are out of range",
	SettingsInvalidCategory: "Unknown category in settings",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "Service is misconfigured",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}

// IsValidErrorCode checks whether the code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
