package kalaapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		keys    []string
		want    string
		wantErr bool
	}{
		{name: "bare array", body: `[{"id":1}]`, want: `[{"id":1}]`},
		{name: "data", body: `{"data":[{"id":1}]}`, want: `[{"id":1}]`},
		{name: "data.data", body: `{"data":{"data":[{"id":1}],"count":1}}`, want: `[{"id":1}]`},
		{name: "results", body: `{"count":1,"results":[{"id":2}]}`, want: `[{"id":2}]`},
		{name: "domain key", body: `{"all_attendance":[{"id":3}]}`, keys: []string{"all_attendance"}, want: `[{"id":3}]`},
		{name: "null data", body: `{"data":null}`, want: `[]`},
		{name: "empty body", body: ``, want: `[]`},
		{name: "unknown key", body: `{"items":[]}`, wantErr: true},
		{name: "scalar", body: `"nope"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrapList([]byte(tt.body), tt.keys...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestUnwrapObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "bare", body: `{"id":1,"email":"a@x.com"}`, want: `{"id":1,"email":"a@x.com"}`},
		{name: "data", body: `{"data":{"id":1},"message":"ok"}`, want: `{"id":1}`},
		{name: "data.data", body: `{"data":{"data":{"id":1}}}`, want: `{"id":1}`},
		{name: "data not an object", body: `{"data":"x","id":4}`, want: `{"data":"x","id":4}`},
		{name: "array", body: `[]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrapObject([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMessageFrom(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"message":"Invalid credentials"}`, want: "Invalid credentials"},
		{body: `{"error":"Student not found"}`, want: "Student not found"},
		{body: `{"detail":"Not found."}`, want: "Not found."},
		{body: `{"non_field_errors":["Bad pair"]}`, want: "Bad pair"},
		{body: `{"email":["student with this email already exists."]}`, want: "email: student with this email already exists."},
		{body: `{"data":{"message":"nested"}}`, want: "nested"},
		{body: `"plain text"`, want: "plain text"},
		{body: `<html>oops</html>`, want: ""},
		{body: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFrom([]byte(tt.body)))
		})
	}
}
