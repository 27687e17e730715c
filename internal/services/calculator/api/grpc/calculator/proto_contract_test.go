package calculator

import (
	"testing"

	calculatorv1 "github.com/louisbranch/grpc-calculator/api/gen/go/calculator/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestProtoContract_CalculatorWireNames(t *testing.T) {
	var _ calculatorv1.CalculatorServer = (*Service)(nil)

	assert.Equal(t, "Calculator", calculatorv1.Calculator_ServiceDesc.ServiceName)
	assert.Equal(t, "/Calculator/Calculate", calculatorv1.Calculator_Calculate_FullMethodName)
	assert.EqualValues(t, 0, calculatorv1.Operation_ADD)
	assert.EqualValues(t, 1, calculatorv1.Operation_SUBTRACT)
}

func TestProtoContract_FieldNumbers(t *testing.T) {
	request := (&calculatorv1.BinaryOperation{}).ProtoReflect().Descriptor()
	checkField(t, request, "first_operand", 1, protoreflect.FloatKind)
	checkField(t, request, "second_operand", 2, protoreflect.FloatKind)
	checkField(t, request, "operation", 3, protoreflect.EnumKind)

	response := (&calculatorv1.CalculationResult{}).ProtoReflect().Descriptor()
	checkField(t, response, "result", 1, protoreflect.FloatKind)

	assert.Equal(t, protoreflect.FullName("BinaryOperation"), request.FullName())
	service := calculatorv1.File_calculator_v1_calculator_proto.Services().ByName("Calculator")
	require.NotNil(t, service)
	assert.NotNil(t, service.Methods().ByName("Calculate"))
}

func checkField(t *testing.T, md protoreflect.MessageDescriptor, name string, number protoreflect.FieldNumber, kind protoreflect.Kind) {
	t.Helper()
	fd := md.Fields().ByName(protoreflect.Name(name))
	require.NotNil(t, fd, "%s: field %q missing", md.FullName(), name)
	assert.Equal(t, number, fd.Number(), "%s.%s number", md.FullName(), name)
	assert.Equal(t, kind, fd.Kind(), "%s.%s kind", md.FullName(), name)
}
