package kalaapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RequestError is returned by every Client method that fails.
// Status is 0 when no response was received.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) String() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// messageFrom extracts the server-provided message of an error body, if any.
// Looked up in order: message, error, detail, non_field_errors, then the first field error.
func messageFrom(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var s string
		if json.Unmarshal(body, &s) == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	for _, key := range []string{"message", "error", "detail", "non_field_errors"} {
		if msg := textOf(obj[key]); msg != "" {
			return msg
		}
	}
	if data, ok := obj["data"]; ok {
		if msg := messageFrom(data); msg != "" {
			return msg
		}
	}

	// field errors, eg. {"email": ["student with this email already exists."]}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msg := textOf(obj[k]); msg != "" {
			return k + ": " + msg
		}
	}
	return ""
}

// textOf returns raw as text when it is a string or a list starting with a string.
func textOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
		return strings.TrimSpace(list[0])
	}
	return ""
}
