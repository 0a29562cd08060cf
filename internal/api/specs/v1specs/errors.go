package v1specs

import (
	"fmt"
)

// SecurityError is passed to Handler.NewError when a request fails a
// security requirement.
type SecurityError struct {
	OperationName OperationName
	Security      string
	Err           error
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("operation %s: security %q: %s", e.OperationName, e.Security, e.Err)
}

func (e *SecurityError) Unwrap() error { return e.Err }

// DecodeRequestError is passed to Handler.NewError when a request body
// cannot be decoded.
type DecodeRequestError struct {
	OperationName OperationName
	Err           error
}

func (e *DecodeRequestError) Error() string {
	return fmt.Sprintf("operation %s: decode request: %s", e.OperationName, e.Err)
}

func (e *DecodeRequestError) Unwrap() error { return e.Err }

// DecodeParamsError is passed to Handler.NewError when path or query
// parameters are invalid.
type DecodeParamsError struct {
	OperationName OperationName
	Name          string
	Err           error
}

func (e *DecodeParamsError) Error() string {
	return fmt.Sprintf("operation %s: decode params: %q: %s", e.OperationName, e.Name, e.Err)
}

func (e *DecodeParamsError) Unwrap() error { return e.Err }
