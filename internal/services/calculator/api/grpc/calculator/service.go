// Package calculator implements the Calculator gRPC service.
package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	calculatorv1 "github.com/louisbranch/grpc-calculator/api/gen/go/calculator/v1"
	apperrors "github.com/louisbranch/grpc-calculator/internal/platform/errors"
	"github.com/louisbranch/grpc-calculator/internal/platform/requestctx"
)

// requestIDMetadataKey names the ErrorInfo metadata entry that echoes the
// request id back to the caller.
const requestIDMetadataKey = "request_id"

// Service exposes the Calculator gRPC operations. It holds no state, so one
// instance serves every call.
type Service struct {
	calculatorv1.UnimplementedCalculatorServer
}

// NewService creates a calculator service.
func NewService() *Service {
	return &Service{}
}

// Calculate applies the requested operation to the two operands.
func (s *Service) Calculate(ctx context.Context, in *calculatorv1.BinaryOperation) (*calculatorv1.CalculationResult, error) {
	if in == nil {
		return nil, statusError(ctx, apperrors.New(apperrors.CodeCalculatorRequestMissing, "calculate request is required"))
	}

	result, err := Apply(in.GetOperation(), in.GetFirstOperand(), in.GetSecondOperand())
	if err != nil {
		return nil, statusError(ctx, err)
	}
	return &calculatorv1.CalculationResult{Result: result}, nil
}

// statusError converts domain errors to gRPC statuses tagged with the
// request id carried on ctx.
func statusError(ctx context.Context, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return err
	}
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		metadata := make(map[string]string, len(appErr.Metadata)+1)
		for key, value := range appErr.Metadata {
			metadata[key] = value
		}
		metadata[requestIDMetadataKey] = requestID
		tagged := *appErr
		tagged.Metadata = metadata
		appErr = &tagged
	}
	return appErr.ToGRPCStatus()
}

// Apply evaluates op on a and b in float32 arithmetic. Operations outside
// the schema's enum fail with a CALCULATOR_INVALID_OPERATION domain error,
// which reports codes.InvalidArgument through its GRPCStatus method.
func Apply(op calculatorv1.Operation, a, b float32) (float32, error) {
	switch op {
	case calculatorv1.Operation_ADD:
		return a + b, nil
	case calculatorv1.Operation_SUBTRACT:
		return a - b, nil
	default:
		return 0, apperrors.InvalidField(
			apperrors.CodeCalculatorInvalidOperation,
			"operation",
			fmt.Sprintf("operation %d is not supported", int32(op)),
			map[string]string{"operation": strconv.Itoa(int(op))},
		)
	}
}
