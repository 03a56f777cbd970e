package database

import "fmt"

// OpError annotates a failed database operation with its context.
type OpError struct {
	Op       string
	Resource string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSettingsErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "settings", Err: err}
}
