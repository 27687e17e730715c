package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the error domain reported in ErrorInfo details.
const Domain = "github.com/louisbranch/grpc-calculator"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Client-facing status message
	Field    string            // Request field at fault, if any
	Metadata map[string]string // Additional context
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// InvalidField creates a domain error that blames one request field.
func InvalidField(code Code, field, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Field:    field,
		Metadata: metadata,
	}
}

// GRPCStatus converts the error to a gRPC status carrying an ErrorInfo and,
// when a field is set, a BadRequest field violation. status.FromError and
// status.Code pick this up through the interface.
func (e *Error) GRPCStatus() *status.Status {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
	}
	if e.Field != "" {
		details = append(details, &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: e.Field, Description: e.Message},
			},
		})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		// Fall back to the bare status when details cannot be attached.
		return st
	}
	return withDetails
}

// ToGRPCStatus returns the status error form of e.
func (e *Error) ToGRPCStatus() error {
	return e.GRPCStatus().Err()
}
