// internal/app/system/httpjson/httpjson.go
package httpjson

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/talentboard/careerhub/internal/app/system/limits"
)

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// envelope is the success shape shared by every endpoint.
type envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// errEnvelope is the failure shape shared by every endpoint.
type errEnvelope struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding errors at this point mean the connection is gone; nothing
	// useful left to do with them.
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// OKMessage writes a 200 success envelope with a message.
func OKMessage(w http.ResponseWriter, data interface{}, msg string) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Message: msg})
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Page writes a 200 success envelope with pagination metadata.
func Page(w http.ResponseWriter, data interface{}, p Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &p})
}

// Error writes a failure envelope with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, errEnvelope{Error: msg})
}

// ErrorDetails writes a failure envelope carrying structured detail,
// e.g. field-level validation problems or a conflicting key.
func ErrorDetails(w http.ResponseWriter, status int, msg string, details interface{}) {
	write(w, status, errEnvelope{Error: msg, Details: details})
}

// Common failure writers so handlers agree on wording.

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "authentication required")
}

func Forbidden(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "forbidden"
	}
	Error(w, http.StatusForbidden, msg)
}

func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "not found"
	}
	Error(w, http.StatusNotFound, msg)
}

func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}

// DecodeBody decodes a JSON request body into dst, rejecting unknown fields
// and bodies over limits.MaxJSONBodySize.
func DecodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, limits.MaxJSONBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
