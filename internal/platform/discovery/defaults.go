// Package discovery centralizes in-network address conventions for calculator
// processes.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceCalculator is the calculator gRPC service identity.
	ServiceCalculator = "calculator"
)

var grpcPorts = map[string]int{
	ServiceCalculator: 50051,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}
