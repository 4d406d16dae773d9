package errors

import (
	"fmt"
)

// Error is the error type exchanged between the services and the HTTP
// transport. The code is an HTTP status code.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when an error is created without an explicit code.
// 500, i.e. the failure is ours, not the caller's.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause *codedError
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}
	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int       { return err.code }
func (err *codedError) Message() string { return err.msg }

func (err *codedError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// ErrorEnricher mutates an error at creation time, typically to attach a
// status code or a cause.
type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if cerr, ok := err.(*codedError); ok {
			cerr.code = code
			return cerr
		}

		return &codedError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	coded, ok := cause.(*codedError)
	if !ok {
		coded = &codedError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if cerr, ok := err.(*codedError); ok {
			cerr.cause = coded
			return cerr
		}

		return &codedError{
			msg:   err.Error(),
			code:  coded.code,
			cause: coded,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error = &codedError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}
