package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	if got := DefaultGRPCAddr(ServiceCalculator); got != "calculator:50051" {
		t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", ServiceCalculator, got, "calculator:50051")
	}
	if got := DefaultGRPCAddr(" calculator "); got != "calculator:50051" {
		t.Fatalf("expected trimmed service name to resolve, got %q", got)
	}
}

func TestDefaultGRPCAddrUnknownService(t *testing.T) {
	if got := DefaultGRPCAddr("abacus"); got != "" {
		t.Fatalf("expected empty addr for unknown service, got %q", got)
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceCalculator); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceCalculator); got != "calculator:50051" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
