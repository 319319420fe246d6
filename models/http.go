package models

// APIMessages is the subset of a response body the API client inspects on
// every call, successful or not.
//
// The hospital API reports a human-readable error in either Detail or
// Message, may attach a list of Errors to a failed response, and may attach
// a list of non-fatal Warnings to a successful one.
type APIMessages struct {
	Detail   string   `json:"detail,omitempty"`
	Message  string   `json:"message,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Text returns the most specific human-readable message in the body, or an
// empty string when none is present.
func (m APIMessages) Text() string {
	switch {
	case m.Detail != "":
		return m.Detail
	case m.Message != "":
		return m.Message
	case len(m.Errors) > 0:
		return m.Errors[0]
	default:
		return ""
	}
}
