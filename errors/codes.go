package errors

// ErrorCode identifies the class of an AppError in logs and responses
type ErrorCode int

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_VALIDATION
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_UPSTREAM_FAILED
	ErrorCode_STORE_FAILED
)

// String returns the code name for logging
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_UPSTREAM_FAILED:
		return "UPSTREAM_FAILED"
	case ErrorCode_STORE_FAILED:
		return "STORE_FAILED"
	default:
		return "UNSPECIFIED"
	}
}
