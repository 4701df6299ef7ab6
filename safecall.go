package safecall

import (
	"errors"
	"fmt"
)

// UnknownPanic is the description reported for a panic value that has no
// textual form of its own.
const UnknownPanic = "unknown panic"

// Catch executes work exactly once on the calling goroutine. It returns nil
// if work completes normally. If work panics, the panic is absorbed at this
// boundary and a description of it is returned; it is never re-raised.
//
// Side effects performed by work before a panic remain in place. Catch adds
// no behavior of its own beyond the interception.
func Catch(work func()) (reason *string) {
	defer func() {
		if r := recover(); r != nil {
			msg := describe(r)
			reason = &msg
		}
	}()
	work()
	return nil
}

// Do executes work exactly once and converts a panic into a returned error.
// A recovered value that is already an error is returned unchanged, so
// errors.Is and errors.As still see it; any other value becomes an error
// carrying the same description Catch would report.
func Do(work func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()
	work()
	return nil
}

func asError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return errors.New(describe(r))
}

// describe renders a recovered panic value as a human-readable string.
func describe(r any) string {
	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprintf("%v", v)
	}
	if msg == "" {
		return UnknownPanic
	}
	return msg
}
