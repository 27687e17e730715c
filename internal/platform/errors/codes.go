// Package errors provides structured domain errors that map onto gRPC
// statuses with machine-readable details.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// Calculator errors
	CodeCalculatorRequestMissing   Code = "CALCULATOR_REQUEST_MISSING"
	CodeCalculatorInvalidOperation Code = "CALCULATOR_INVALID_OPERATION"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCalculatorRequestMissing,
		CodeCalculatorInvalidOperation:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
