package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/models"
)

// mapHTTPError converts a non-2xx response into an [AuthorizationError]
// (401, 403) or a [ServerError]. 2xx responses map to nil.
func mapHTTPError(resp *Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	messages := parseMessages(resp.Body)
	message := messages.Text()
	if message == "" {
		message = strings.TrimSpace(string(resp.Body))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthorizationError{StatusCode: resp.StatusCode, Message: message, Errors: messages.Errors}
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: message, Errors: messages.Errors, Body: resp.Body}
	}
}

// parseMessages extracts detail/message/errors/warnings from a JSON object
// body. Anything else yields an empty result.
func parseMessages(body []byte) models.APIMessages {
	var messages models.APIMessages

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return messages
	}

	_ = json.Unmarshal(trimmed, &messages)
	return messages
}
