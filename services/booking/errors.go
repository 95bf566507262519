package booking

import "fmt"

// Error codes the engine surfaces to its callers.
const (
	CodeNotFound   = "notFound"
	CodeConflict   = "conflict"
	CodeValidation = "validation"
	CodeUpstream   = "upstream"
)

// EngineError is a coded error with a machine-readable reason.
type EngineError struct {
	Code    string
	Reason  string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Code, e.Reason, e.Message)
}

func NewNotFound(reason, msg string) error {
	return &EngineError{Code: CodeNotFound, Reason: reason, Message: msg}
}

func NewConflict(reason, msg string) error {
	return &EngineError{Code: CodeConflict, Reason: reason, Message: msg}
}

func NewValidation(reason, msg string) error {
	return &EngineError{Code: CodeValidation, Reason: reason, Message: msg}
}

func NewUpstream(reason, msg string) error {
	return &EngineError{Code: CodeUpstream, Reason: reason, Message: msg}
}

// CodeOf extracts the engine error code, or "" for plain errors.
func CodeOf(err error) string {
	if ee, ok := err.(*EngineError); ok {
		return ee.Code
	}
	return ""
}

// ReasonOf extracts the engine error reason, or "" for plain errors.
func ReasonOf(err error) string {
	if ee, ok := err.(*EngineError); ok {
		return ee.Reason
	}
	return ""
}
