package jobapi

import (
	"errors"
	"fmt"
	"strings"
)

// RequestFailure reports a transport error or a non-2xx response.
type RequestFailure struct {
	Op string
	// Status is zero when no response was received.
	Status  int
	Message string
	Err     error
}

func (e *RequestFailure) Error() string {
	var b strings.Builder
	b.WriteString("jobapi: ")
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RequestFailure) Unwrap() error { return e.Err }

// ApplicationFailure reports a 2xx response whose success flag is not true.
type ApplicationFailure struct {
	Op      string
	Message string
}

func (e *ApplicationFailure) Error() string {
	if e.Message == "" {
		return "jobapi: " + e.Op + ": request unsuccessful"
	}
	return "jobapi: " + e.Op + ": " + e.Message
}

// ServerMessage returns the backend-supplied message carried by err, if any.
func ServerMessage(err error) string {
	var requestFailure *RequestFailure
	if errors.As(err, &requestFailure) {
		return strings.TrimSpace(requestFailure.Message)
	}
	var applicationFailure *ApplicationFailure
	if errors.As(err, &applicationFailure) {
		return strings.TrimSpace(applicationFailure.Message)
	}
	return ""
}

// MessageOr returns the backend message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	if message := ServerMessage(err); message != "" {
		return message
	}
	return fallback
}
