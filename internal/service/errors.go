package service

import (
	"errors"

	"mpesa-wrap/internal/pdf"
)

// ErrorKind tells callers how to surface a failed analysis.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindAuthentication
	KindMalformed
)

const (
	msgWrongPassword = "Wrong password or corrupted PDF file."
	msgMalformed     = "The PDF file is malformed or corrupted."
	msgInternal      = "Failed to process statement"
)

// StatementError is the only error type returned by StatementService.
type StatementError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *StatementError) Error() string {
	if e.Err == nil || e.Kind != KindInternal {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func newStatementError(err error) *StatementError {
	switch {
	case errors.Is(err, pdf.ErrWrongPasswordOrCorrupted):
		return &StatementError{Kind: KindAuthentication, Message: msgWrongPassword, Err: err}
	case errors.Is(err, pdf.ErrMalformedDocument):
		return &StatementError{Kind: KindMalformed, Message: msgMalformed, Err: err}
	default:
		return &StatementError{Kind: KindInternal, Message: msgInternal, Err: err}
	}
}
