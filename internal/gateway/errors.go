package gateway

import (
	"errors"
	"net/http"

	"github.com/tidwall/gjson"
	"google.golang.org/api/googleapi"
)

// serverMessage extracts a human-readable message from an error body.
// Accepts {"message": "..."} and {"error": "..."}.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.String() != "" {
		return m.String()
	}
	if m := gjson.GetBytes(body, "error"); m.Type == gjson.String {
		return m.String()
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0 for transport and
// other non-HTTP errors.
func StatusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// Message reduces err to the server-supplied message, or fallback if the
// server did not supply one.
func Message(err error, fallback string) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return fallback
}
