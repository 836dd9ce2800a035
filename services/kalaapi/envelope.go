package kalaapi

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Envelope keys seen across backend revisions.
const (
	keyData    = "data"
	keyResults = "results"
)

var errUnexpectedShape = errors.New("unexpected response shape")

// unwrapList finds the list in a response body. It accepts a bare array, {data: [...]},
// {data: {data: [...]}}, {results: [...]} and {<domainKey>: [...]}.
func unwrapList(body []byte, domainKeys ...string) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return json.RawMessage("[]"), nil
	}
	switch body[0] {
	case '[':
		return body, nil
	case '{':
	default:
		return nil, errUnexpectedShape
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, errors.Wrap(err, "decoding envelope")
	}
	for _, key := range append([]string{keyData, keyResults}, domainKeys...) {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			return json.RawMessage("[]"), nil
		}
		if raw[0] == '[' {
			return raw, nil
		}
		if raw[0] == '{' {
			// nested envelope, eg. paginated {data: {data: [...], count: 3}}
			if inner, err := unwrapList(raw, domainKeys...); err == nil {
				return inner, nil
			}
		}
	}
	return nil, errUnexpectedShape
}

// unwrapObject finds the object in a response body. It accepts the bare object,
// {data: {...}} and {data: {data: {...}}}. An object is considered bare when it has no data key
// or its data key does not hold an object.
func unwrapObject(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, errUnexpectedShape
	}
	for depth := 0; depth < 2; depth++ {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, errors.Wrap(err, "decoding envelope")
		}
		inner := bytes.TrimSpace(obj[keyData])
		if len(inner) == 0 || inner[0] != '{' {
			break
		}
		body = inner
	}
	return body, nil
}

func decodeList(body []byte, v interface{}, domainKeys ...string) error {
	raw, err := unwrapList(body, domainKeys...)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(raw, v), "decoding list")
}

func decodeObject(body []byte, v interface{}) error {
	raw, err := unwrapObject(body)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(raw, v), "decoding object")
}
