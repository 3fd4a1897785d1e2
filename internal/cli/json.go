package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/rileyhilliard/widgetmon/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ErrCodeUnknown is used for errors that carry no code of their own.
const ErrCodeUnknown = "UNKNOWN"

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONError writes err as a failed response.
func WriteJSONError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: toJSONError(err)})
}

func toJSONError(err error) *JSONError {
	var wmErr *errors.Error
	if stderrors.As(err, &wmErr) {
		return &JSONError{Code: wmErr.Code, Message: wmErr.Message, Suggestion: wmErr.Suggestion}
	}
	return &JSONError{Code: ErrCodeUnknown, Message: err.Error()}
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
