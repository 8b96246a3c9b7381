package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/crestview/estates-api/internal/middleware"
)

// Kind classifies an error into the categories the API distinguishes.
// The HTTP status for a failure is decided once, here, from the kind —
// never re-derived by matching on message text.
type Kind int

const (
	KindUnexpected Kind = iota // anything unclassified: 500
	KindValidation             // malformed or missing input: 400
	KindAuth                   // missing or insufficient credentials: 401
	KindNotFound               // referenced record absent: 404
	KindConflict               // uniqueness violation: 400
)

// Error is a classified application error. Services create these at their
// boundary; handlers only inspect the kind and message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error, keeping it available via Unwrap.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain.
// Unclassified errors are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps a kind to its HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// failureBody is the uniform envelope for every failed request.
type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Respond writes the envelope and status for a classified error.
// Unexpected errors are logged with their underlying cause and the client
// only sees a generic message.
func Respond(c *gin.Context, err error) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	kind := KindOf(err)
	message := err.Error()

	fields := map[string]interface{}{
		"request_id": requestID,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
	}

	switch kind {
	case KindUnexpected:
		if log != nil {
			log.Error("Unexpected error", err, fields)
		}
		message = "Internal server error"
	case KindAuth:
		if log != nil {
			log.Warn("Request rejected: "+message, fields)
		}
	default:
		if log != nil {
			fields["error"] = message
			log.Warn("Request failed", fields)
		}
	}

	c.JSON(kind.HTTPStatus(), failureBody{Success: false, Error: message})
}

// BadRequest writes a 400 envelope with the given message.
func BadRequest(c *gin.Context, message string) {
	Respond(c, New(KindValidation, message))
}

// NotFound writes a 404 envelope with the given message.
func NotFound(c *gin.Context, message string) {
	Respond(c, New(KindNotFound, message))
}

// Unauthorized writes a 401 envelope with the given message.
func Unauthorized(c *gin.Context, message string) {
	Respond(c, New(KindAuth, message))
}

// ValidationFailed writes a 400 envelope for binding failures.
// The first violated rule is reported with a human-readable message,
// matching the contract that callers see one error at a time.
func ValidationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		Respond(c, New(KindValidation, first.Field()+": "+formatFieldError(first)))
		return
	}
	Respond(c, New(KindValidation, "Invalid request body"))
}

// formatFieldError converts a validator.FieldError to a human-readable message.
func formatFieldError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "required_if":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "value is too long or large (maximum: " + err.Param() + ")"
	case "gte":
		return "must be greater than or equal to " + err.Param()
	case "lte":
		return "must be less than or equal to " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "url":
		return "must be a valid URL"
	case "slug":
		return "must contain only lowercase letters, numbers and hyphens"
	case "inmobile":
		return "must be a valid 10-digit Indian mobile number"
	case "videourl":
		return "must be a YouTube or Vimeo URL"
	case "resumelink":
		return "must be a link to an allowed cloud storage provider"
	default:
		return "validation failed for tag: " + err.Tag()
	}
}
