package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
	TypeInternal      Type = "INTERNAL"
)

// Code identifies a registered error within a registry
type Code string

// Error is the canonical application error. It carries enough information
// to build an HTTP response without the handler knowing the domain.
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for the response body. Chainable.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error without exposing it to clients
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON-serializable body for this error
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"error":   http.StatusText(e.HTTPStatus),
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// registration holds the template for a registered code
type registration struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry is a namespace of error codes for one domain package
type Registry struct {
	prefix string
	codes  map[Code]registration
}

// NewRegistry creates a registry whose codes are prefixed with the given
// domain name, e.g. NewRegistry("JOB") registers "JOB_NOT_FOUND".
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]registration),
	}
}

// Register adds a code template to the registry and returns the full code.
// Intended for package-level var blocks; not safe for concurrent use.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.codes[full] = registration{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New instantiates an error from a registered code
func (r *Registry) New(code Code) *Error {
	reg, ok := r.codes[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Type:       reg.errType,
		Code:       code,
		Message:    reg.message,
		HTTPStatus: reg.httpStatus,
	}
}

// NewWithMessage instantiates a registered code with a custom message
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	e := r.New(code)
	e.Message = message
	return e
}

// Wrap converts an arbitrary error into an *Error of the given type,
// preserving the original as cause. Existing *Error values pass through.
func Wrap(err error, message string, errType Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Type:       errType,
		Code:       Code(string(errType) + "_ERROR"),
		Message:    message,
		HTTPStatus: statusFor(errType),
		cause:      err,
	}
}

func statusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
