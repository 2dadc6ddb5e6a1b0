package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeStorageFailure   ErrorCode = "STORAGE_FAILURE"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeMissingField     ErrorCode = "MISSING_FIELD"
)
